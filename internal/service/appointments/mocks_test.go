package appointments

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appointment)
	created, _ := args.Get(0).(*domain.Appointment)
	return created, args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	args := m.Called(ctx, id, status)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Load(ctx context.Context) ([]*domain.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func (m *mockCache) Save(ctx context.Context, appointments []*domain.Appointment) ([]*domain.Appointment, error) {
	args := m.Called(ctx, appointments)
	saved, _ := args.Get(0).([]*domain.Appointment)
	return saved, args.Error(1)
}

func (m *mockCache) Pending(ctx context.Context) ([]*domain.Appointment, error) {
	args := m.Called(ctx)
	pending, _ := args.Get(0).([]*domain.Appointment)
	return pending, args.Error(1)
}

func (m *mockCache) ClearPending(ctx context.Context, ids ...string) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *mockCache) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	args := m.Called(ctx, id, status)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func (m *mockCache) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type stubNotifier struct{}

func (stubNotifier) NotificationLink(appointment *domain.Appointment) string {
	if appointment.Status.NotifiesClient() {
		return "https://wa.me/55" + appointment.Phone
	}
	return ""
}

type stubMetrics struct {
	degraded  []string
	conflicts []string
}

func (s *stubMetrics) IncDegradedSnapshot(operation string) {
	s.degraded = append(s.degraded, operation)
}

func (s *stubMetrics) IncSlotConflict(source string) {
	s.conflicts = append(s.conflicts, source)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
