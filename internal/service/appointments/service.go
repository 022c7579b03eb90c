package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/infra/cache/snapshot"
	appointmentRepo "github.com/RRibeiro-047/carlach-detailing/internal/infra/storage/appointment"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// Service reads and triages appointments, falling back to the snapshot cache
// when the database is unavailable
type Service struct {
	repo     AppointmentRepository
	cache    SnapshotCache
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewService creates the appointment service
func NewService(
	repo AppointmentRepository,
	cache SnapshotCache,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Fetch returns the current appointment set.
// A successful database read first writes pending cache-only appointments to the database,
// then refreshes the cache; a failed one serves the cache as a degraded snapshot.
func (s *Service) Fetch(ctx context.Context) (*models.Snapshot, error) {
	appointments, err := s.repo.GetAll(ctx)
	if err == nil {
		appointments = s.replayPending(ctx, appointments)

		saved, cacheErr := s.cache.Save(ctx, appointments)
		if cacheErr != nil {
			s.logger.Warn("Fetch: failed to refresh snapshot cache: %v", cacheErr)
			return &models.Snapshot{Appointments: appointments}, nil
		}
		return &models.Snapshot{Appointments: saved}, nil
	}

	s.logger.Error("Fetch: repository error, falling back to snapshot cache: %v", err)
	s.metrics.IncDegradedSnapshot("fetch")

	cached, cacheErr := s.cache.Load(ctx)
	if cacheErr != nil {
		s.logger.Error("Fetch: snapshot cache error: %v", cacheErr)
		return nil, fmt.Errorf("%w: repository: %v, cache: %v", ErrStorageUnavailable, err, cacheErr)
	}

	s.logger.Info("Fetch: serving %d cached appointments", len(cached))
	return &models.Snapshot{Appointments: cached, Degraded: true}, nil
}

// replayPending inserts appointments created while the database was down.
// Those that cannot be inserted stay pending and are returned alongside stored so their slots stay taken.
func (s *Service) replayPending(ctx context.Context, stored []*domain.Appointment) []*domain.Appointment {
	pending, err := s.cache.Pending(ctx)
	if err != nil {
		s.logger.Warn("Fetch: failed to read pending appointments: %v", err)
		return stored
	}
	if len(pending) == 0 {
		return stored
	}

	known := make(map[string]struct{}, len(stored))
	for _, appointment := range stored {
		if appointment != nil {
			known[appointment.ID] = struct{}{}
		}
	}

	result := stored
	var written []string

	for _, appointment := range pending {
		if _, ok := known[appointment.ID]; ok {
			written = append(written, appointment.ID)
			continue
		}

		created, err := s.repo.Create(ctx, appointment)
		switch {
		case err == nil:
			s.logger.Info("Fetch: pending appointment id=%s written to database", created.ID)
			written = append(written, created.ID)
			result = append(result, created)

		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			s.logger.Warn("Fetch: pending appointment id=%s conflicts with %s %s in database, kept in cache",
				appointment.ID, appointment.AppointmentDate, appointment.AppointmentTime)
			s.metrics.IncSlotConflict("replay")
			result = append(result, appointment)

		default:
			s.logger.Warn("Fetch: failed to write pending appointment id=%s: %v", appointment.ID, err)
			result = append(result, appointment)
		}
	}

	if err := s.cache.ClearPending(ctx, written...); err != nil {
		s.logger.Warn("Fetch: failed to clear pending appointments: %v", err)
	}

	return result
}

// List returns the admin view: filtered, counted per status and grouped by date
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	filter := domain.AppointmentsFilter{Search: req.Search}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	snap, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// counts ignore the status filter so every tab can show its total
	searched := filterAppointments(snap.Appointments, domain.AppointmentsFilter{Search: filter.Search})
	filtered := filterAppointments(searched, domain.AppointmentsFilter{Status: filter.Status})

	s.logger.Info("List: %d of %d appointments match (status=%v, search=%q)",
		len(filtered), len(snap.Appointments), req.Status, req.Search)

	return &models.ListResponse{
		Days:     groupByDate(filtered),
		Counts:   countByStatus(searched),
		Total:    len(filtered),
		Degraded: snap.Degraded,
	}, nil
}

// Get returns one appointment, looking in the cache for ids the database does not know
func (s *Service) Get(ctx context.Context, id string) (*models.AppointmentResult, error) {
	result := &models.AppointmentResult{}

	appointment, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:

	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		appointment, err = s.findCached(ctx, id)
		if err != nil {
			return nil, s.cacheError("Get", id, err)
		}

	default:
		s.logger.Error("Get: repository error for id=%s, reading snapshot cache: %v", id, err)
		s.metrics.IncDegradedSnapshot("get")
		appointment, err = s.findCached(ctx, id)
		if err != nil {
			return nil, s.cacheError("Get", id, err)
		}
		result.Degraded = true
	}

	result.Appointment = appointment
	result.WhatsAppLink = s.notifier.NotificationLink(appointment)
	return result, nil
}

// UpdateStatus moves an appointment to a new status and returns the client notification link
func (s *Service) UpdateStatus(ctx context.Context, id string, rawStatus string) (*models.StatusUpdateResult, error) {
	s.logger.Info("UpdateStatus: appointment id=%s to status=%s", id, rawStatus)

	status := domain.AppointmentStatus(rawStatus)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", rawStatus, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}

	result := &models.StatusUpdateResult{}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	switch {
	case err == nil:
		if _, cacheErr := s.cache.UpdateStatus(ctx, id, status); cacheErr != nil && !errors.Is(cacheErr, snapshot.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: failed to update snapshot cache for id=%s: %v", id, cacheErr)
		}

	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		// may have been created while the database was down and live only in the cache
		updated, err = s.cache.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, s.cacheError("UpdateStatus", id, err)
		}

	default:
		s.logger.Error("UpdateStatus: repository error for id=%s, updating snapshot cache only: %v", id, err)
		s.metrics.IncDegradedSnapshot("update_status")
		updated, err = s.cache.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, s.cacheError("UpdateStatus", id, err)
		}
		result.Degraded = true
	}

	result.Appointment = updated
	result.WhatsAppLink = s.notifier.NotificationLink(updated)

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, status)
	return result, nil
}

// Delete removes an appointment; the bool reports a degraded (cache only) delete
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.logger.Info("Delete: appointment id=%s", id)

	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		if cacheErr := s.cache.Delete(ctx, id); cacheErr != nil && !errors.Is(cacheErr, snapshot.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: failed to update snapshot cache for id=%s: %v", id, cacheErr)
		}
		return false, nil

	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		if err := s.cache.Delete(ctx, id); err != nil {
			return false, s.cacheError("Delete", id, err)
		}
		return false, nil

	default:
		s.logger.Error("Delete: repository error for id=%s, deleting from snapshot cache only: %v", id, err)
		s.metrics.IncDegradedSnapshot("delete")
		if err := s.cache.Delete(ctx, id); err != nil {
			return false, s.cacheError("Delete", id, err)
		}
		return true, nil
	}
}

func (s *Service) findCached(ctx context.Context, id string) (*domain.Appointment, error) {
	cached, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, appointment := range cached {
		if appointment != nil && appointment.ID == id {
			return appointment, nil
		}
	}
	return nil, snapshot.ErrAppointmentNotFound
}

func (s *Service) cacheError(op, id string, err error) error {
	if errors.Is(err, snapshot.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%s not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: snapshot cache error for id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - cache: %v", ErrStorageUnavailable, op, err)
}
