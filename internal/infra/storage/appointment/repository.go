package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/pkg/psqlbuilder"
)

const (
	table = "appointments"

	// uniqueViolation PostgreSQL SQLSTATE for unique_violation
	uniqueViolation = "23505"

	// integrityClass PostgreSQL SQLSTATE class 23, integrity constraint violation
	integrityClass = "23"

	// slotIndex unique index on (appointment_date, appointment_time)
	slotIndex = "appointments_slot_key"
)

var columns = []string{
	"id",
	"client_name",
	"phone",
	"car_model",
	"car_size",
	"service_type",
	"wax_application",
	"appointment_date",
	"appointment_time",
	"price",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository appointments storage on PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates the repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an appointment and fills CreatedAt/UpdatedAt.
// The unique index on (appointment_date, appointment_time) turns a lost
// check-then-create race into ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_name",
			"phone",
			"car_model",
			"car_size",
			"service_type",
			"wax_application",
			"appointment_date",
			"appointment_time",
			"price",
			"status",
			"notes",
		).
		Values(
			appointment.ID,
			appointment.ClientName,
			appointment.Phone,
			appointment.CarModel,
			appointment.CarSize,
			appointment.ServiceType,
			appointment.WaxApplication,
			appointment.AppointmentDate,
			appointment.AppointmentTime,
			appointment.Price,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrConstraint, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetAll returns every appointment ordered by date and time
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("appointment_date ASC", "appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByID returns one appointment
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// UpdateStatus changes the status and returns the updated row
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// Delete removes an appointment, freeing its slot
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment domain.Appointment
		notes       sql.NullString
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientName,
		&appointment.Phone,
		&appointment.CarModel,
		&appointment.CarSize,
		&appointment.ServiceType,
		&appointment.WaxApplication,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.Price,
		&appointment.Status,
		&notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		appointment.Notes = &notes.String
	}

	return &appointment, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && pqErr.Constraint == slotIndex
}

func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code.Class()) == integrityClass
}
