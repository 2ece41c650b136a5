package services

import (
	"context"
	"time"

	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/stretchr/testify/mock"
)

type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) ListTrips(ctx context.Context) ([]types.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Trip), args.Error(1)
}

func (m *MockTripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripStore) CreateTrip(ctx context.Context, trip types.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) CountTrips(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	var raw []byte
	if v := args.Get(0); v != nil {
		raw = v.([]byte)
	}
	return raw, args.Bool(1), args.Error(2)
}

func (m *MockPreferenceStore) Set(ctx context.Context, key string, raw []byte) error {
	args := m.Called(ctx, key, raw)
	return args.Error(0)
}

func (m *MockPreferenceStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// fakePinger answers Ping after delay with err.
type fakePinger struct {
	delay time.Duration
	err   error
}

func (p fakePinger) Ping(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.err
}
