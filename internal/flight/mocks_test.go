package flight

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockFlightClient struct {
	mock.Mock
}

func (m *MockFlightClient) SearchFlights(ctx context.Context, payload SearchPayload) Envelope {
	args := m.Called(ctx, payload)
	return args.Get(0).(Envelope)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Record(ctx context.Context, entry AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }
