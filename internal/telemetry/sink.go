package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the public research endpoint.
const DefaultURL = "https://ai-undercover-backend.onrender.com/comments"

// Sink accepts attempt records. Implementations may drop records; callers
// must not depend on delivery.
type Sink interface {
	Send(ctx context.Context, rec Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, rec Record) error

func (f SinkFunc) Send(ctx context.Context, rec Record) error { return f(ctx, rec) }

// NopSink discards every record.
type NopSink struct{}

func (NopSink) Send(context.Context, Record) error { return nil }

// HTTPSink POSTs records as JSON. The response body is ignored.
type HTTPSink struct {
	url    string
	client *http.Client
}

// NewHTTPSink creates an HTTPSink. A nil client gets a 10s timeout.
func NewHTTPSink(url string, client *http.Client) *HTTPSink {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSink{url: url, client: client}
}

// URL returns the endpoint records are posted to.
func (s *HTTPSink) URL() string { return s.url }

func (s *HTTPSink) Send(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := ValidateJSON(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post record: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{URL: s.url, Code: resp.StatusCode}
	}
	return nil
}

// Multi fans a record out to every sink and joins their errors.
type Multi []Sink

func (m Multi) Send(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
