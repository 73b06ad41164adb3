// Package encoder provides implementations of the ports.SequenceEncoder
// boundary: an HTTP client for a transformer inference sidecar and a
// deterministic offline encoder.
package encoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
)

// Default settings for the inference sidecar client.
const (
	DefaultEncoderTimeout = 30 * time.Second
	DefaultMaxLength      = 512
)

// HTTPEncoder calls a sequence-encoder inference service over HTTP. The
// service runs the frozen model on CPU with no gradient tracking; it pads or
// truncates inputs to maxLength internally. Safe for concurrent use.
type HTTPEncoder struct {
	baseURL    string
	maxLength  int
	httpClient *http.Client
}

// HTTPEncoderOption configures an HTTPEncoder.
type HTTPEncoderOption func(*HTTPEncoder)

// WithTimeout sets a custom timeout for encode requests.
func WithTimeout(timeout time.Duration) HTTPEncoderOption {
	return func(e *HTTPEncoder) {
		e.httpClient.Timeout = timeout
	}
}

// WithMaxLength sets the maximum input length forwarded to the service.
func WithMaxLength(maxLength int) HTTPEncoderOption {
	return func(e *HTTPEncoder) {
		e.maxLength = maxLength
	}
}

// NewHTTPEncoder creates a client for the encoder service at baseURL,
// e.g. "http://localhost:8000".
func NewHTTPEncoder(baseURL string, opts ...HTTPEncoderOption) *HTTPEncoder {
	e := &HTTPEncoder{
		baseURL:   baseURL,
		maxLength: DefaultMaxLength,
		httpClient: &http.Client{
			Timeout: DefaultEncoderTimeout,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// encodeRequest is the request body for the /encode endpoint.
type encodeRequest struct {
	Sequence  string `json:"sequence"`
	MaxLength int    `json:"max_length"`
}

// encodeResponse covers the output shapes different encoder builds expose:
// a tuple-style hidden-state tensor, a named last-hidden-state field, or the
// raw per-token matrix. Exactly one field is expected to be populated.
type encodeResponse struct {
	HiddenStates    [][][]float32 `json:"hidden_states,omitempty"`
	LastHiddenState [][][]float32 `json:"last_hidden_state,omitempty"`
	Matrix          [][]float32   `json:"matrix,omitempty"`
}

// healthResponse is the response from the service's /health endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// Encode sends the sequence to the inference service and returns its output
// tagged with the shape it arrived in. Shape normalization is left to the
// embedding extractor.
func (e *HTTPEncoder) Encode(ctx context.Context, sequence string) (domain.EncoderOutput, error) {
	body, err := json.Marshal(encodeRequest{Sequence: sequence, MaxLength: e.maxLength})
	if err != nil {
		return domain.EncoderOutput{}, fmt.Errorf("encoder: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/encode", bytes.NewReader(body))
	if err != nil {
		return domain.EncoderOutput{}, fmt.Errorf("encoder: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return domain.EncoderOutput{}, fmt.Errorf("encoder: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.EncoderOutput{}, fmt.Errorf("encoder: service returned status %d: %s", resp.StatusCode, string(data))
	}

	var decoded encodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.EncoderOutput{}, fmt.Errorf("encoder: decoding response: %w", err)
	}

	switch {
	case len(decoded.HiddenStates) > 0:
		return domain.EncoderOutput{Kind: domain.OutputHiddenStateTuple, Batched: decoded.HiddenStates}, nil
	case len(decoded.LastHiddenState) > 0:
		return domain.EncoderOutput{Kind: domain.OutputLastHiddenState, Batched: decoded.LastHiddenState}, nil
	case len(decoded.Matrix) > 0:
		return domain.EncoderOutput{Kind: domain.OutputRawMatrix, Matrix: decoded.Matrix}, nil
	default:
		return domain.EncoderOutput{}, fmt.Errorf("encoder: service returned no hidden states")
	}
}

// Health checks whether the encoder service is reachable and reports itself
// healthy. Used by process startup to decide on the offline fallback.
func (e *HTTPEncoder) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("encoder: creating health request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("encoder: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("encoder: health check returned status %d", resp.StatusCode)
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("encoder: decoding health response: %w", err)
	}
	if health.Status != "healthy" && health.Status != "ok" {
		return fmt.Errorf("encoder: service reports status %q", health.Status)
	}
	return nil
}
