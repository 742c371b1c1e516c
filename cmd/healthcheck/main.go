// Command healthcheck probes the portal's health endpoint from inside its
// container and exits non-zero unless the portal reports "ok".
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	defaultAddr  = "127.0.0.1:8080"
	probeTimeout = 2 * time.Second
)

func main() {
	os.Exit(check())
}

func check() int {
	url := fmt.Sprintf("http://%s/api/v1/health", normalizeAddr(os.Getenv("SMARTCAMPUS_LISTEN_ADDR")))

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 1
	}

	resp, err := (&http.Client{Timeout: probeTimeout}).Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		return 1
	}
	defer resp.Body.Close()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck: decode:", err)
		return 1
	}

	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		fmt.Fprintf(os.Stderr, "healthcheck: status %d %q\n", resp.StatusCode, body.Status)
		return 1
	}

	return 0
}

// normalizeAddr points the probe at loopback when the portal binds every
// interface, since the probe runs inside the same container.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
