package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	appointmentRepo "github.com/RRibeiro-047/carlach-detailing/internal/infra/storage/appointment"
)

// UseCase books an appointment.
// The availability check and the insert are not atomic; the unique (date, time)
// index in the database catches the requests that lose the race.
type UseCase struct {
	snapshots    SnapshotProvider
	repo         AppointmentRepository
	cache        SnapshotCache
	metrics      Metrics
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	snapshots SnapshotProvider,
	repo AppointmentRepository,
	cache SnapshotCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		snapshots:    snapshots,
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		ids:          UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the request, re-checks the slot against the latest snapshot and stores the appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, service=%s, size=%s",
		req.AppointmentDate, req.AppointmentTime, req.ServiceType, req.CarSize)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Closed on Sundays
	if !domain.IsBusinessDay(req.AppointmentDate) {
		uc.logger.Warn("CreateAppointment: %s is not a business day", req.AppointmentDate)
		return nil, ErrNotBusinessDay
	}

	// 3. Latest snapshot
	snap, err := uc.snapshots.Fetch(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	// 4. Re-check the slot right before submitting
	if !domain.IsSlotAvailable(snap.Appointments, req.AppointmentDate, req.AppointmentTime, "") {
		uc.logger.Warn("CreateAppointment: slot %s %s already taken", req.AppointmentDate, req.AppointmentTime)
		uc.metrics.IncSlotConflict("snapshot")
		return nil, &SlotConflictError{
			Date:      req.AppointmentDate,
			Time:      req.AppointmentTime,
			Available: domain.AvailableSlots(snap.Appointments, req.AppointmentDate, ""),
		}
	}

	// 5. Price is fixed at creation
	appointment := &domain.Appointment{
		ID:              uc.ids.NewID(),
		ClientName:      strings.TrimSpace(req.ClientName),
		Phone:           strings.TrimSpace(req.Phone),
		CarModel:        strings.TrimSpace(req.CarModel),
		CarSize:         req.CarSize,
		ServiceType:     req.ServiceType,
		WaxApplication:  req.WaxApplication,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Price:           domain.CalculatePrice(req.ServiceType, req.CarSize, req.WaxApplication),
		Status:          domain.StatusPending,
		Notes:           normalizeNotes(req.Notes),
	}

	// 6. Store
	created, err := uc.repo.Create(ctx, appointment)
	switch {
	case err == nil:
		if cacheErr := uc.cache.Add(ctx, created); cacheErr != nil {
			uc.logger.Warn("CreateAppointment: failed to add id=%s to snapshot cache: %v", created.ID, cacheErr)
		}
		uc.metrics.IncAppointmentsCreated("database")
		uc.logger.Info("CreateAppointment: created id=%s, price=%.2f", created.ID, created.Price)
		return &Response{Appointment: created}, nil

	case errors.Is(err, appointmentRepo.ErrSlotTaken):
		uc.logger.Warn("CreateAppointment: slot %s %s taken by a concurrent request",
			req.AppointmentDate, req.AppointmentTime)
		uc.metrics.IncSlotConflict("database")
		return nil, uc.conflict(ctx, req)
	}

	if !errors.Is(err, appointmentRepo.ErrExecQuery) {
		uc.logger.Error("CreateAppointment: failed to store id=%s: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: repository: %v", ErrInternal, err)
	}

	// 7. Database down: keep the appointment in the cache as pending so it is not lost
	uc.logger.Error("CreateAppointment: repository error, storing id=%s in snapshot cache: %v", appointment.ID, err)

	now := uc.timeProvider.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if cacheErr := uc.cache.AddPending(ctx, appointment); cacheErr != nil {
		uc.logger.Error("CreateAppointment: snapshot cache error for id=%s: %v", appointment.ID, cacheErr)
		return nil, fmt.Errorf("%w: repository: %v, cache: %v", ErrInternal, err, cacheErr)
	}

	uc.metrics.IncAppointmentsCreated("cache")
	return &Response{Appointment: appointment, Degraded: true}, nil
}

// conflict re-reads the snapshot for the slots left after a lost race
func (uc *UseCase) conflict(ctx context.Context, req *Request) error {
	conflictErr := &SlotConflictError{Date: req.AppointmentDate, Time: req.AppointmentTime}

	snap, err := uc.snapshots.Fetch(ctx)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to refresh slots after conflict: %v", err)
		return conflictErr
	}

	conflictErr.Available = domain.AvailableSlots(snap.Appointments, req.AppointmentDate, "")
	return conflictErr
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
