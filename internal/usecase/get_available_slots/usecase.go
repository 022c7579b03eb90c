package get_available_slots

import (
	"context"
	"fmt"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// UseCase lists the free slots of a date
type UseCase struct {
	snapshots SnapshotProvider
	logger    Logger
}

// NewUseCase creates the use case
func NewUseCase(snapshots SnapshotProvider, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute returns the free slots of req.Date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, exclude=%q", req.Date, req.ExcludeID)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Closed days have no slots, no need to read appointments
	if !domain.IsBusinessDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is not a business day", req.Date)
		return &Response{
			Date:        req.Date,
			BusinessDay: false,
			Slots:       []string{},
		}, nil
	}

	// 3. Current appointment snapshot
	snap, err := uc.snapshots.Fetch(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	// 4. Free slots
	slots := domain.AvailableSlots(snap.Appointments, req.Date, req.ExcludeID)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s (degraded=%t)",
		len(slots), len(domain.AllSlots()), req.Date, snap.Degraded)

	return &Response{
		Date:        req.Date,
		BusinessDay: true,
		Slots:       slots,
		Degraded:    snap.Degraded,
	}, nil
}
