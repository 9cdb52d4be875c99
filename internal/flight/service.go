package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flightdesk/pkg/cache"
	"flightdesk/pkg/idgen"
	"flightdesk/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "flightdesk/internal/flight"

// FlightClient sends a payload to the upstream search API. It reports
// transport failures inside the returned Envelope.
type FlightClient interface {
	SearchFlights(ctx context.Context, payload SearchPayload) Envelope
}

type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}

type Service struct {
	flightClient FlightClient
	cache        cache.Cache
	retention    time.Duration
	audit        AuditLog
	ids          idgen.Generator
	logger       logger.Logger
	now          func() time.Time

	requests        metric.Int64Counter
	upstreamLatency metric.Float64Histogram
}

// NewService wires the search flow. audit may be nil, in which case searches
// are not written to the audit log.
func NewService(flightClient FlightClient, cache cache.Cache, retentionMinutes int,
	audit AuditLog, ids idgen.Generator, log logger.Logger) *Service {
	s := &Service{
		flightClient: flightClient,
		cache:        cache,
		retention:    time.Duration(retentionMinutes) * time.Minute,
		audit:        audit,
		ids:          ids,
		logger:       log,
		now:          time.Now,
	}
	s.initMetrics()
	return s
}

func (s *Service) initMetrics() {
	meter := otel.Meter(meterName)
	fallback := noop.NewMeterProvider().Meter(meterName)

	requests, err := meter.Int64Counter("flight.search.requests",
		metric.WithDescription("Flight searches by journey type and outcome"))
	if err != nil {
		s.logger.Warn("failed to create search counter", logger.Field{Key: "err", Value: err})
		requests, _ = fallback.Int64Counter("flight.search.requests")
	}

	latency, err := meter.Float64Histogram("flight.search.upstream.duration",
		metric.WithDescription("Upstream flight search latency"),
		metric.WithUnit("ms"))
	if err != nil {
		s.logger.Warn("failed to create latency histogram", logger.Field{Key: "err", Value: err})
		latency, _ = fallback.Float64Histogram("flight.search.upstream.duration")
	}

	s.requests = requests
	s.upstreamLatency = latency
}

// Search builds the upstream payload, performs the call and normalizes the
// result. The record is kept for diagnostics whatever the outcome. A
// transport failure is returned as an *AppError alongside the result.
func (s *Service) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	log := logger.FromContext(ctx, s.logger)

	payload := BuildSearchRequest(in)
	id := s.ids.NewID()

	start := time.Now()
	env := s.flightClient.SearchFlights(ctx, payload)
	elapsed := time.Since(start)

	itineraries := Normalize(env)

	outcome := "ok"
	switch {
	case env.Error:
		outcome = "failure"
	case len(itineraries) == 0:
		outcome = "empty"
	}
	attrs := metric.WithAttributes(
		attribute.String("journey_type", string(payload.JourneyType)),
		attribute.String("outcome", outcome),
	)
	s.requests.Add(ctx, 1, attrs)
	s.upstreamLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)

	createdAt := s.now().UTC()
	s.storeRecord(ctx, log, SearchRecord{
		ID:        id,
		CreatedAt: createdAt,
		Payload:   payload,
		Envelope:  env,
	})

	if s.audit != nil {
		if err := s.audit.Record(ctx, auditEntryFor(id, payload, env, len(itineraries), createdAt)); err != nil {
			log.Error("failed to write search audit", logger.Field{Key: "err", Value: err})
		}
	}

	log.Info("flight search completed",
		logger.Field{Key: "search_id", Value: id},
		logger.Field{Key: "journey_type", Value: string(payload.JourneyType)},
		logger.Field{Key: "segments", Value: len(payload.Segment)},
		logger.Field{Key: "outcome", Value: outcome},
		logger.Field{Key: "results", Value: len(itineraries)},
		logger.Field{Key: "upstream_ms", Value: elapsed.Milliseconds()},
	)

	result := &SearchResult{
		SearchID:    id,
		Payload:     payload,
		Envelope:    env,
		Itineraries: itineraries,
	}

	if env.Error {
		return result, newUpstreamError(env.Message)
	}
	return result, nil
}

// GetSearch returns a previously stored search record.
func (s *Service) GetSearch(ctx context.Context, id string) (*SearchRecord, error) {
	cached, err := s.cache.Get(ctx, searchKey(id))
	if errors.Is(err, cache.ErrNotFound) {
		return nil, newNotFoundError("search not found or expired", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load search %s: %w", id, err)
	}

	var record SearchRecord
	if err := json.Unmarshal([]byte(cached), &record); err != nil {
		return nil, fmt.Errorf("failed to decode search %s: %w", id, err)
	}
	return &record, nil
}

func (s *Service) storeRecord(ctx context.Context, log logger.Logger, record SearchRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		log.Error("failed to marshal search record", logger.Field{Key: "err", Value: err})
		return
	}

	if err := s.cache.Set(ctx, searchKey(record.ID), string(data), s.retention); err != nil {
		log.Error("failed to store search record",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "search_id", Value: record.ID},
		)
	}
}

func searchKey(id string) string {
	return "flight:search:" + id
}
