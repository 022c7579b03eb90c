package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// maxWatchRetries attempts of an optimistic read-modify-write before giving up
const maxWatchRetries = 5

// pendingSuffix names the set of ids stored only in the cache
const pendingSuffix = ":pending"

// Store keeps the last known appointment list as one JSON document in redis.
// It is the fallback read by the service when the database is unreachable.
// Appointments created while the database was down are also tracked in a pending
// set until they are written to the database, and survive snapshot refreshes.
type Store struct {
	rdb        *redis.Client
	key        string
	pendingKey string
	now        func() time.Time
}

// NewStore creates a store writing under key
func NewStore(rdb *redis.Client, key string) *Store {
	return &Store{
		rdb:        rdb,
		key:        key,
		pendingKey: key + pendingSuffix,
		now:        time.Now,
	}
}

// Load returns the cached snapshot, empty if nothing was cached yet
func (s *Store) Load(ctx context.Context) ([]*domain.Appointment, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []*domain.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get: %v", ErrRead, err)
	}

	return decode(data)
}

// Save replaces the cached snapshot with appointments read from the database.
// Pending appointments missing from that list are kept; the stored list is returned.
func (s *Store) Save(ctx context.Context, appointments []*domain.Appointment) ([]*domain.Appointment, error) {
	var saved []*domain.Appointment

	err := s.mutate(ctx, func(st *txState) error {
		st.appointments = mergePending(appointments, st.appointments, st.pending)
		saved = st.appointments
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Add appends an appointment already stored in the database
func (s *Store) Add(ctx context.Context, appointment *domain.Appointment) error {
	return s.mutate(ctx, func(st *txState) error {
		st.appointments = append(st.appointments, appointment)
		return nil
	})
}

// AddPending appends an appointment that only exists in the cache
func (s *Store) AddPending(ctx context.Context, appointment *domain.Appointment) error {
	return s.mutate(ctx, func(st *txState) error {
		st.appointments = append(st.appointments, appointment)
		st.markPending = append(st.markPending, appointment.ID)
		return nil
	})
}

// Pending returns the cached appointments not yet written to the database
func (s *Store) Pending(ctx context.Context) ([]*domain.Appointment, error) {
	ids, err := s.rdb.SMembers(ctx, s.pendingKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Pending - smembers: %v", ErrRead, err)
	}
	if len(ids) == 0 {
		return []*domain.Appointment{}, nil
	}

	appointments, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	return filterPending(appointments, toSet(ids)), nil
}

// ClearPending marks appointments as written to the database
func (s *Store) ClearPending(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	if err := s.rdb.SRem(ctx, s.pendingKey, members...).Err(); err != nil {
		return fmt.Errorf("%w: ClearPending - srem: %v", ErrWrite, err)
	}
	return nil
}

// UpdateStatus changes the status of a cached appointment and returns it
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	var updated *domain.Appointment

	err := s.mutate(ctx, func(st *txState) error {
		appointment, err := updateStatus(st.appointments, id, status, s.now())
		if err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an appointment from the snapshot and from the pending set
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *txState) error {
		remaining, err := remove(st.appointments, id)
		if err != nil {
			return err
		}
		st.appointments = remaining
		st.clearPending = append(st.clearPending, id)
		return nil
	})
}

// txState snapshot and pending set as read inside one WATCH transaction
type txState struct {
	appointments []*domain.Appointment
	pending      map[string]struct{}
	markPending  []string
	clearPending []string
}

// mutate runs fn over the snapshot inside WATCH/MULTI so concurrent writers do not lose updates
func (s *Store) mutate(ctx context.Context, fn func(st *txState) error) error {
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, s.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: mutate - get: %v", ErrRead, err)
		}

		st := &txState{appointments: []*domain.Appointment{}}
		if err == nil {
			st.appointments, err = decode(data)
			if err != nil {
				return err
			}
		}

		ids, err := tx.SMembers(ctx, s.pendingKey).Result()
		if err != nil {
			return fmt.Errorf("%w: mutate - smembers: %v", ErrRead, err)
		}
		st.pending = toSet(ids)

		if err := fn(st); err != nil {
			return err
		}

		encoded, err := encode(st.appointments)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, encoded, 0)
			for _, id := range st.markPending {
				pipe.SAdd(ctx, s.pendingKey, id)
			}
			for _, id := range st.clearPending {
				pipe.SRem(ctx, s.pendingKey, id)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rdb.Watch(ctx, txf, s.key, s.pendingKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrAppointmentNotFound) && !errors.Is(err, ErrRead) && !errors.Is(err, ErrWrite) {
			return fmt.Errorf("%w: mutate - exec: %v", ErrWrite, err)
		}
		return err
	}

	return fmt.Errorf("%w: mutate - too many concurrent updates", ErrWrite)
}

func encode(appointments []*domain.Appointment) ([]byte, error) {
	data, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}
	return data, nil
}

func decode(data []byte) ([]*domain.Appointment, error) {
	appointments := []*domain.Appointment{}
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrRead, err)
	}
	return appointments, nil
}

func updateStatus(appointments []*domain.Appointment, id string, status domain.AppointmentStatus, now time.Time) (*domain.Appointment, error) {
	for _, appointment := range appointments {
		if appointment != nil && appointment.ID == id {
			appointment.Status = status
			appointment.UpdatedAt = now
			return appointment, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func remove(appointments []*domain.Appointment, id string) ([]*domain.Appointment, error) {
	for i, appointment := range appointments {
		if appointment != nil && appointment.ID == id {
			return append(appointments[:i], appointments[i+1:]...), nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// mergePending returns fresh plus the pending entries of cached that fresh does not contain
func mergePending(fresh, cached []*domain.Appointment, pending map[string]struct{}) []*domain.Appointment {
	merged := make([]*domain.Appointment, 0, len(fresh)+len(pending))
	known := make(map[string]struct{}, len(fresh))
	for _, appointment := range fresh {
		if appointment == nil {
			continue
		}
		known[appointment.ID] = struct{}{}
		merged = append(merged, appointment)
	}

	for _, appointment := range filterPending(cached, pending) {
		if _, ok := known[appointment.ID]; !ok {
			merged = append(merged, appointment)
		}
	}
	return merged
}

func filterPending(appointments []*domain.Appointment, pending map[string]struct{}) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(pending))
	for _, appointment := range appointments {
		if appointment == nil {
			continue
		}
		if _, ok := pending[appointment.ID]; ok {
			out = append(out, appointment)
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
