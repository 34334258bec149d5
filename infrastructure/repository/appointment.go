package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/violetagest/clinic-manager-api/infrastructure/database/postgres"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

const appointmentsTable = "appointments a"

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByTimeRange(ctx context.Context, start, end *time.Time) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert("appointments").
		Columns("id", "patient_id", "start_time", "end_time", "status", "notes").
		Values(
			appointment.ID,
			appointment.PatientID,
			appointment.StartTime,
			appointment.EndTime,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al insertar cita: %w", err)
	}

	return appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	queryBuilder := squirrel.
		Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID})

	if appointment.PatientID != "" {
		queryBuilder = queryBuilder.Set("patient_id", appointment.PatientID)
	}

	if !appointment.StartTime.IsZero() {
		queryBuilder = queryBuilder.Set("start_time", appointment.StartTime)
	}

	if !appointment.EndTime.IsZero() {
		queryBuilder = queryBuilder.Set("end_time", appointment.EndTime)
	}

	if appointment.Status != "" {
		queryBuilder = queryBuilder.Set("status", appointment.Status)
	}

	if appointment.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", appointment.Notes)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar cita: %w", err)
	}

	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	appointment, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear cita: %w", err)
	}

	return appointment, nil
}

// GetByTimeRange devuelve las citas de la ventana visible del calendario,
// con los datos del paciente para el título del evento. Los límites son
// opcionales: sin ellos devuelve la agenda completa.
func (r *appointmentRepository) GetByTimeRange(ctx context.Context, start, end *time.Time) ([]*domain.Appointment, error) {
	queryBuilder := r.selectBuilder().OrderBy("a.start_time ASC")

	if start != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"a.start_time": *start})
	}

	if end != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"a.end_time": *end})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear citas: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar cita: %w", err)
	}

	return nil
}

func (r *appointmentRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"a.id", "a.patient_id", "a.start_time", "a.end_time", "a.status", "a.notes",
			"a.created_at", "a.updated_at",
			"p.name", "p.phone", "p.email",
		).
		From(appointmentsTable).
		LeftJoin("patients p ON p.id = a.patient_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAppointment(row squirrel.RowScanner) (*domain.Appointment, error) {
	appointment := &domain.Appointment{}

	var patientName, patientPhone, patientEmail *string

	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Status,
		&appointment.Notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
		&patientName,
		&patientPhone,
		&patientEmail,
	)
	if err != nil {
		return nil, err
	}

	if patientName != nil {
		appointment.Patient = &domain.Patient{
			ID:    appointment.PatientID,
			Name:  *patientName,
			Phone: patientPhone,
			Email: patientEmail,
		}
	}

	return appointment, nil
}
