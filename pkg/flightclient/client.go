package flightclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"flightdesk/internal/flight"
	"flightdesk/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	searchPath = "/flight/search"

	MessageSuccess      = "Data fetched successfully"
	MessageStatusFailed = "Failed to fetch data"
	MessageCallFailed   = "An error occurred while fetching data"

	// upper bound on a response body we are willing to read
	maxResponseBytes = 16 << 20
)

type Config struct {
	BaseURL    string
	SecretCode string
	APIKey     string
	// RatePerSecond limits outbound calls; zero or less disables limiting.
	RatePerSecond float64
}

// InnoTravelClient talks to the InnoTravel flight search API.
type InnoTravelClient struct {
	httpClient *http.Client
	baseURL    string
	secretCode string
	apiKey     string
	limiter    *rate.Limiter
	tracer     trace.Tracer
	logger     logger.Logger
}

func NewInnoTravelClient(httpClient *http.Client, cfg Config, log logger.Logger) *InnoTravelClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := int(cfg.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &InnoTravelClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretCode: cfg.SecretCode,
		apiKey:     cfg.APIKey,
		limiter:    limiter,
		tracer:     otel.Tracer("flightdesk/pkg/flightclient"),
		logger:     log,
	}
}

// SearchFlights POSTs the payload and wraps the outcome in an Envelope.
// It never returns an error: non-2xx statuses and call failures come back
// as an Envelope with Error set.
func (c *InnoTravelClient) SearchFlights(ctx context.Context, payload flight.SearchPayload) flight.Envelope {
	ctx, span := c.tracer.Start(ctx, "innotravel.SearchFlights", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	log := logger.FromContext(ctx, c.logger)

	data, status, err := c.post(ctx, payload)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("innotravel search call failed", logger.Field{Key: "err", Value: err})
		return flight.Envelope{Error: true, Message: MessageCallFailed}
	}

	if status < 200 || status > 299 {
		span.SetStatus(codes.Error, http.StatusText(status))
		log.Warn("innotravel search returned non-2xx status", logger.Field{Key: "status", Value: status})
		return flight.Envelope{Error: true, Message: MessageStatusFailed}
	}

	return flight.Envelope{Error: false, Message: MessageSuccess, Data: data}
}

func (c *InnoTravelClient) post(ctx context.Context, payload flight.SearchPayload) (*flight.APIResponse, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("innotravel: rate limiter: %w", err)
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("innotravel: failed to marshal request: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, 0, fmt.Errorf("innotravel: failed to build request: %w", err)
	}

	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	r.Header.Set("Cache-Control", "no-store")
	r.Header.Set("secretecode", c.secretCode)
	r.Header.Set("apikey", c.apiKey)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, 0, fmt.Errorf("innotravel: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, resp.StatusCode, nil
	}

	var apiResp flight.APIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&apiResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("innotravel: failed to decode json response: %w", err)
	}

	return &apiResp, resp.StatusCode, nil
}
