package flight

import (
	"context"
	"fmt"
	"time"

	"flightdesk/pkg/db"
)

// AuditEntry is one row of the search audit log.
type AuditEntry struct {
	ID            string
	JourneyType   JourneyType
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	BookingClass  CabinClass
	Succeeded     bool
	Message       string
	ResultCount   int
	CreatedAt     time.Time
}

const insertSearchQuery = `INSERT INTO flight_searches
	(id, journey_type, origin, destination, departure_date, return_date, booking_class, succeeded, message, result_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

type AuditRepository struct {
	db db.SQLExecutor
}

func NewAuditRepository(executor db.SQLExecutor) *AuditRepository {
	return &AuditRepository{db: executor}
}

func (r *AuditRepository) Record(ctx context.Context, e AuditEntry) error {
	_, err := r.db.ExecContext(ctx, insertSearchQuery,
		e.ID,
		string(e.JourneyType),
		e.Origin,
		e.Destination,
		e.DepartureDate,
		e.ReturnDate,
		string(e.BookingClass),
		e.Succeeded,
		e.Message,
		e.ResultCount,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record search %s: %w", e.ID, err)
	}
	return nil
}

// auditEntryFor summarises a finished search from its payload and outcome.
func auditEntryFor(id string, payload SearchPayload, env Envelope, resultCount int, at time.Time) AuditEntry {
	e := AuditEntry{
		ID:           id,
		JourneyType:  payload.JourneyType,
		BookingClass: payload.BookingClass,
		Succeeded:    !env.Error,
		Message:      env.Message,
		ResultCount:  resultCount,
		CreatedAt:    at,
	}

	if len(payload.Segment) > 0 {
		out := payload.Segment[0]
		e.Origin = out.DepartureAirport
		e.Destination = out.ArrivalAirport
		e.DepartureDate = out.DepartureDate
	}
	if len(payload.Segment) > 1 {
		e.ReturnDate = payload.Segment[1].DepartureDate
	}
	return e
}
