package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

// DefaultQuoteInterval is how long each quote stays on the ticker.
const DefaultQuoteInterval = 5 * time.Second

// QuoteRotator cycles through the ticker's quotes on a fixed interval and
// fans each rotation out to subscribers.
type QuoteRotator struct {
	clock    clock.Clock
	interval time.Duration

	mu     sync.RWMutex
	quotes []model.Quote
	index  int
	subs   map[chan model.Quote]struct{}
}

// NewQuoteRotator creates a rotator starting at the first quote.
func NewQuoteRotator(quotes []model.Quote, clk clock.Clock, interval time.Duration) *QuoteRotator {
	return &QuoteRotator{
		clock:    clk,
		interval: interval,
		quotes:   quotes,
		subs:     make(map[chan model.Quote]struct{}),
	}
}

// Len returns the number of quotes in rotation.
func (r *QuoteRotator) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes)
}

// Current returns the quote on display. ok is false when there are no quotes.
func (r *QuoteRotator) Current() (q model.Quote, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.quotes) == 0 {
		return model.Quote{}, false
	}
	return r.quotes[r.index], true
}

// Subscribe returns a channel receiving every rotation, and a function that
// unsubscribes and closes it. A slow subscriber only ever sees the latest quote.
func (r *QuoteRotator) Subscribe() (<-chan model.Quote, func()) {
	ch := make(chan model.Quote, 1)

	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, ch)
			r.mu.Unlock()
			close(ch)
		})
	}
}

// Advance moves to the next quote, wrapping at the end, and notifies
// subscribers. It returns the new current quote.
func (r *QuoteRotator) Advance() model.Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.quotes) == 0 {
		return model.Quote{}
	}

	r.index = (r.index + 1) % len(r.quotes)
	q := r.quotes[r.index]

	for ch := range r.subs {
		// Replace any unread quote with the newer one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- q:
		default:
		}
	}

	return q
}

// Start rotates quotes every interval until ctx is canceled. With fewer than
// two quotes there is nothing to rotate and Start only waits for ctx.
func (r *QuoteRotator) Start(ctx context.Context) {
	if r.Len() < 2 {
		<-ctx.Done()
		return
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("quote rotator stopped")
			return
		case <-r.clock.After(r.interval):
			r.Advance()
		}
	}
}
