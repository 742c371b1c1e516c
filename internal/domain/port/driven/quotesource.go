package driven

import "github.com/ericfisherdev/smartcampus/internal/domain/model"

// QuoteSource defines the driven port that supplies the quote ticker's entries.
type QuoteSource interface {
	// Load returns the quotes in display order.
	Load() ([]model.Quote, error)
}
