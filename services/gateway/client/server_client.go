package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shareit/utils"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const maxResponseBytes = 4 << 20

// errServerFailure marks a 5xx answer so the breaker counts it; the response is still relayed
var errServerFailure = errors.New("server answered with an error status")

// ForwardRequest describes one call relayed from the gateway to the server
type ForwardRequest struct {
	Method    string
	Path      string
	Query     url.Values
	UserID    string
	RequestID string
	Body      []byte
}

// Response is the server's answer, relayed verbatim to the caller
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// BreakerSettings configures the circuit breaker in front of the server
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// ServerClient forwards validated requests to the server through a circuit breaker
type ServerClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewServerClient creates a client for the server at baseURL
func NewServerClient(baseURL string, timeout time.Duration, bs BreakerSettings) *ServerClient {
	threshold := bs.FailureThreshold
	settings := gobreaker.Settings{
		Name:        "shareit-server",
		MaxRequests: bs.MaxRequests,
		Interval:    bs.Interval,
		Timeout:     bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			utils.Warn("circuit breaker state changed", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}

	return &ServerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Forward relays req to the server. Transport failures and 5xx answers count
// against the breaker; while it is open calls fail fast with gobreaker.ErrOpenState.
func (c *ServerClient) Forward(ctx context.Context, req ForwardRequest) (*Response, error) {
	var resp *Response

	_, err := c.breaker.Execute(func() (interface{}, error) {
		r, err := c.do(ctx, req)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.StatusCode >= http.StatusInternalServerError {
			return nil, errServerFailure
		}
		return nil, nil
	})
	if err != nil {
		if resp != nil && errors.Is(err, errServerFailure) {
			return resp, nil
		}
		return nil, fmt.Errorf("client: %s %s: %w", req.Method, req.Path, err)
	}

	return resp, nil
}

func (c *ServerClient) do(ctx context.Context, fr ForwardRequest) (*Response, error) {
	target := c.baseURL + fr.Path
	if len(fr.Query) > 0 {
		target += "?" + fr.Query.Encode()
	}

	var body io.Reader
	if len(fr.Body) > 0 {
		body = bytes.NewReader(fr.Body)
	}

	req, err := http.NewRequestWithContext(ctx, fr.Method, target, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if fr.UserID != "" {
		req.Header.Set(utils.SharerUserIDHeader, fr.UserID)
	}
	if fr.RequestID != "" {
		req.Header.Set(utils.RequestIDHeader, fr.RequestID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	contentType := httpResp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}

	return &Response{
		StatusCode:  httpResp.StatusCode,
		ContentType: contentType,
		Body:        data,
	}, nil
}
