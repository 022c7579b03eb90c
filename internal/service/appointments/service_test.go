package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/infra/cache/snapshot"
	appointmentRepo "github.com/RRibeiro-047/carlach-detailing/internal/infra/storage/appointment"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

var errDB = errors.New("dial tcp: connection refused")

type fixture struct {
	repo    *mockRepo
	cache   *mockCache
	metrics *stubMetrics
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{repo: &mockRepo{}, cache: &mockCache{}, metrics: &stubMetrics{}}
	f.svc = NewService(f.repo, f.cache, stubNotifier{}, f.metrics, nopLogger{})
	return f
}

func (f *fixture) noPending(ctx context.Context) {
	f.cache.On("Pending", ctx).Return([]*domain.Appointment{}, nil)
}

func appointmentsFixture() []*domain.Appointment {
	return []*domain.Appointment{
		{ID: "1", ClientName: "Ana Souza", Phone: "47911112222", CarModel: "Onix", AppointmentDate: "2025-03-11", AppointmentTime: "10:00", Status: domain.StatusPending},
		{ID: "2", ClientName: "Bruno Lima", Phone: "47933334444", CarModel: "Compass", AppointmentDate: "2025-03-10", AppointmentTime: "15:00", Status: domain.StatusConfirmed},
		{ID: "3", ClientName: "Carla Dias", Phone: "47955556666", CarModel: "Hilux", AppointmentDate: "2025-03-10", AppointmentTime: "08:00", Status: domain.StatusPending},
		{ID: "4", ClientName: "Ana Paula", Phone: "47977778888", CarModel: "Civic", AppointmentDate: "2025-03-12", AppointmentTime: "09:00", Status: domain.StatusCancelled},
	}
}

func TestFetch_FromRepositoryRefreshesCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	all := appointmentsFixture()

	f.repo.On("GetAll", ctx).Return(all, nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, all).Return(all, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.False(t, snap.Degraded)
	assert.Equal(t, all, snap.Appointments)
	f.cache.AssertExpectations(t)
	assert.Empty(t, f.metrics.degraded)
}

func TestFetch_CacheSaveFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetAll", ctx).Return(appointmentsFixture(), nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, mock.Anything).Return(nil, snapshot.ErrWrite)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.False(t, snap.Degraded)
	assert.Len(t, snap.Appointments, 4)
}

func TestFetch_FallsBackToCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cached := appointmentsFixture()[:1]

	f.repo.On("GetAll", ctx).Return(nil, errDB)
	f.cache.On("Load", ctx).Return(cached, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.True(t, snap.Degraded)
	assert.Equal(t, cached, snap.Appointments)
	assert.Equal(t, []string{"fetch"}, f.metrics.degraded)
	f.cache.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFetch_BothFail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetAll", ctx).Return(nil, errDB)
	f.cache.On("Load", ctx).Return(nil, snapshot.ErrRead)

	_, err := f.svc.Fetch(ctx)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func cacheOnlyAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              "cache-1",
		ClientName:      "Diego Alves",
		Phone:           "47999990000",
		CarModel:        "Gol",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "09:00",
		Status:          domain.StatusPending,
	}
}

func TestFetch_WritesPendingAppointmentsToRepository(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	stored := appointmentsFixture()
	pending := cacheOnlyAppointment()
	merged := append(appointmentsFixture(), pending)

	f.repo.On("GetAll", ctx).Return(stored, nil)
	f.cache.On("Pending", ctx).Return([]*domain.Appointment{pending}, nil)
	f.repo.On("Create", ctx, pending).Return(pending, nil)
	f.cache.On("ClearPending", ctx, []string{"cache-1"}).Return(nil)
	f.cache.On("Save", ctx, merged).Return(merged, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.False(t, snap.Degraded)
	assert.Len(t, snap.Appointments, 5)
	assert.False(t, domain.IsSlotAvailable(snap.Appointments, "2025-03-10", "09:00", ""))
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestFetch_PendingSlotTakenStaysInSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pending := cacheOnlyAppointment()
	merged := append(appointmentsFixture(), pending)

	f.repo.On("GetAll", ctx).Return(appointmentsFixture(), nil)
	f.cache.On("Pending", ctx).Return([]*domain.Appointment{pending}, nil)
	f.repo.On("Create", ctx, pending).Return(nil, appointmentRepo.ErrSlotTaken)
	f.cache.On("ClearPending", ctx, []string(nil)).Return(nil)
	f.cache.On("Save", ctx, merged).Return(merged, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.Contains(t, snap.Appointments, pending)
	assert.Equal(t, []string{"replay"}, f.metrics.conflicts)
	f.cache.AssertExpectations(t)
}

func TestFetch_PendingKeptWhenRepositoryRejectsIt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pending := cacheOnlyAppointment()

	f.repo.On("GetAll", ctx).Return([]*domain.Appointment{}, nil)
	f.cache.On("Pending", ctx).Return([]*domain.Appointment{pending}, nil)
	f.repo.On("Create", ctx, pending).Return(nil, appointmentRepo.ErrExecQuery)
	f.cache.On("ClearPending", ctx, []string(nil)).Return(nil)
	f.cache.On("Save", ctx, mock.Anything).Return(nil, snapshot.ErrWrite)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	require.Len(t, snap.Appointments, 1)
	assert.Equal(t, "cache-1", snap.Appointments[0].ID)
	assert.Empty(t, f.metrics.conflicts)
}

func TestFetch_PendingAlreadyStoredIsCleared(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pending := cacheOnlyAppointment()
	stored := []*domain.Appointment{pending}

	f.repo.On("GetAll", ctx).Return(stored, nil)
	f.cache.On("Pending", ctx).Return([]*domain.Appointment{pending}, nil)
	f.cache.On("ClearPending", ctx, []string{"cache-1"}).Return(nil)
	f.cache.On("Save", ctx, stored).Return(stored, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.Len(t, snap.Appointments, 1)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFetch_ServesSavedSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	stored := appointmentsFixture()[:1]
	saved := []*domain.Appointment{stored[0], cacheOnlyAppointment()}

	f.repo.On("GetAll", ctx).Return(stored, nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, stored).Return(saved, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.Equal(t, saved, snap.Appointments)
}

func TestFetch_PendingReadFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	all := appointmentsFixture()

	f.repo.On("GetAll", ctx).Return(all, nil)
	f.cache.On("Pending", ctx).Return(nil, snapshot.ErrRead)
	f.cache.On("Save", ctx, all).Return(all, nil)

	snap, err := f.svc.Fetch(ctx)

	require.NoError(t, err)
	assert.Equal(t, all, snap.Appointments)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestList_GroupsAndCounts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetAll", ctx).Return(appointmentsFixture(), nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, mock.Anything).Return(appointmentsFixture(), nil)

	resp, err := f.svc.List(ctx, &models.ListRequest{})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2025-03-10", resp.Days[0].Date)
	assert.Equal(t, "3", resp.Days[0].Appointments[0].ID, "08:00 before 15:00")
	assert.Equal(t, "2", resp.Days[0].Appointments[1].ID)
	assert.Equal(t, "2025-03-11", resp.Days[1].Date)
	assert.Equal(t, "2025-03-12", resp.Days[2].Date)
	assert.Equal(t, 2, resp.Counts[domain.StatusPending])
	assert.Equal(t, 1, resp.Counts[domain.StatusConfirmed])
	assert.Equal(t, 0, resp.Counts[domain.StatusCompleted])
	assert.Equal(t, 1, resp.Counts[domain.StatusCancelled])
}

func TestList_StatusAndSearch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	status := "pending"

	f.repo.On("GetAll", ctx).Return(appointmentsFixture(), nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, mock.Anything).Return(appointmentsFixture(), nil)

	resp, err := f.svc.List(ctx, &models.ListRequest{Status: &status, Search: "ANA"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "1", resp.Days[0].Appointments[0].ID)
	// counts keep the search but not the status filter
	assert.Equal(t, 1, resp.Counts[domain.StatusPending])
	assert.Equal(t, 1, resp.Counts[domain.StatusCancelled])
}

func TestList_SearchByPhoneAndCar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetAll", ctx).Return(appointmentsFixture(), nil)
	f.noPending(ctx)
	f.cache.On("Save", ctx, mock.Anything).Return(appointmentsFixture(), nil)

	byPhone, err := f.svc.List(ctx, &models.ListRequest{Search: "3333"})
	require.NoError(t, err)
	assert.Equal(t, 1, byPhone.Total)

	byCar, err := f.svc.List(ctx, &models.ListRequest{Search: "hilux"})
	require.NoError(t, err)
	assert.Equal(t, 1, byCar.Total)
}

func TestList_InvalidStatus(t *testing.T) {
	f := newFixture()
	status := "pendente"

	_, err := f.svc.List(context.Background(), &models.ListRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	f.repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestUpdateStatus_Confirmed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	updated := &domain.Appointment{ID: "1", Phone: "47911112222", Status: domain.StatusConfirmed}

	f.repo.On("UpdateStatus", ctx, "1", domain.StatusConfirmed).Return(updated, nil)
	f.cache.On("UpdateStatus", ctx, "1", domain.StatusConfirmed).Return(nil, snapshot.ErrAppointmentNotFound)

	result, err := f.svc.UpdateStatus(ctx, "1", "confirmed")

	require.NoError(t, err)
	assert.Equal(t, updated, result.Appointment)
	assert.Equal(t, "https://wa.me/5547911112222", result.WhatsAppLink)
	assert.False(t, result.Degraded)
}

func TestUpdateStatus_CancelledHasNoLink(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	updated := &domain.Appointment{ID: "1", Status: domain.StatusCancelled}

	f.repo.On("UpdateStatus", ctx, "1", domain.StatusCancelled).Return(updated, nil)
	f.cache.On("UpdateStatus", ctx, "1", domain.StatusCancelled).Return(updated, nil)

	result, err := f.svc.UpdateStatus(ctx, "1", "cancelled")

	require.NoError(t, err)
	assert.Empty(t, result.WhatsAppLink)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), "1", "done")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_CacheOnlyAppointment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cached := &domain.Appointment{ID: "local", Status: domain.StatusCompleted}

	f.repo.On("UpdateStatus", ctx, "local", domain.StatusCompleted).Return(nil, appointmentRepo.ErrAppointmentNotFound)
	f.cache.On("UpdateStatus", ctx, "local", domain.StatusCompleted).Return(cached, nil)

	result, err := f.svc.UpdateStatus(ctx, "local", "completed")

	require.NoError(t, err)
	assert.Equal(t, cached, result.Appointment)
	assert.False(t, result.Degraded)
}

func TestUpdateStatus_NotFoundAnywhere(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("UpdateStatus", ctx, "x", domain.StatusConfirmed).Return(nil, appointmentRepo.ErrAppointmentNotFound)
	f.cache.On("UpdateStatus", ctx, "x", domain.StatusConfirmed).Return(nil, snapshot.ErrAppointmentNotFound)

	_, err := f.svc.UpdateStatus(ctx, "x", "confirmed")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_Degraded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cached := &domain.Appointment{ID: "1", Status: domain.StatusConfirmed}

	f.repo.On("UpdateStatus", ctx, "1", domain.StatusConfirmed).Return(nil, errDB)
	f.cache.On("UpdateStatus", ctx, "1", domain.StatusConfirmed).Return(cached, nil)

	result, err := f.svc.UpdateStatus(ctx, "1", "confirmed")

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.WhatsAppLink)
	assert.Equal(t, []string{"update_status"}, f.metrics.degraded)
}

func TestDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Delete", ctx, "1").Return(nil)
	f.cache.On("Delete", ctx, "1").Return(nil)

	degraded, err := f.svc.Delete(ctx, "1")

	require.NoError(t, err)
	assert.False(t, degraded)
	f.cache.AssertExpectations(t)
}

func TestDelete_Degraded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Delete", ctx, "1").Return(errDB)
	f.cache.On("Delete", ctx, "1").Return(nil)

	degraded, err := f.svc.Delete(ctx, "1")

	require.NoError(t, err)
	assert.True(t, degraded)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Delete", ctx, "x").Return(appointmentRepo.ErrAppointmentNotFound)
	f.cache.On("Delete", ctx, "x").Return(snapshot.ErrAppointmentNotFound)

	_, err := f.svc.Delete(ctx, "x")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_CacheFailsWhileDegraded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Delete", ctx, "1").Return(errDB)
	f.cache.On("Delete", ctx, "1").Return(snapshot.ErrWrite)

	_, err := f.svc.Delete(ctx, "1")

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestGet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	stored := &domain.Appointment{ID: "1", Phone: "47911112222", Status: domain.StatusCompleted}

	f.repo.On("GetByID", ctx, "1").Return(stored, nil)

	result, err := f.svc.Get(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, stored, result.Appointment)
	assert.Equal(t, "https://wa.me/5547911112222", result.WhatsAppLink)
	assert.False(t, result.Degraded)
	f.cache.AssertNotCalled(t, "Load", mock.Anything)
}

func TestGet_CacheOnlyAppointment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "3").Return(nil, appointmentRepo.ErrAppointmentNotFound)
	f.cache.On("Load", ctx).Return(appointmentsFixture(), nil)

	result, err := f.svc.Get(ctx, "3")

	require.NoError(t, err)
	assert.Equal(t, "Carla Dias", result.Appointment.ClientName)
	assert.Empty(t, result.WhatsAppLink)
	assert.False(t, result.Degraded)
}

func TestGet_Degraded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "2").Return(nil, errDB)
	f.cache.On("Load", ctx).Return(appointmentsFixture(), nil)

	result, err := f.svc.Get(ctx, "2")

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, []string{"get"}, f.metrics.degraded)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "x").Return(nil, appointmentRepo.ErrAppointmentNotFound)
	f.cache.On("Load", ctx).Return(appointmentsFixture(), nil)

	_, err := f.svc.Get(ctx, "x")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGet_BothFail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "1").Return(nil, errDB)
	f.cache.On("Load", ctx).Return(nil, snapshot.ErrRead)

	_, err := f.svc.Get(ctx, "1")

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
