package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/violetagest/clinic-manager-api/infrastructure/database/postgres"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

const (
	patientsTable = "patients"

	defaultPageSize = 20
	maxPageSize     = 1000
)

var patientColumns = []string{
	"id", "name", "phone", "email", "first_visit_date", "status", "notes", "created_at", "updated_at",
}

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context, filters domain.PatientFilters) (*domain.PatientPage, error)
	Delete(ctx context.Context, id string) error
}

type patientRepository struct {
	conn *postgres.Connection
}

func NewPatientRepository(conn *postgres.Connection) PatientRepository {
	return &patientRepository{
		conn: conn,
	}
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(patientsTable).
		Columns("id", "name", "phone", "email", "first_visit_date", "status", "notes").
		Values(
			patient.ID,
			patient.Name,
			patient.Phone,
			patient.Email,
			patient.FirstVisitDate,
			patient.Status,
			patient.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al insertar paciente: %w", err)
	}

	return patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	queryBuilder := squirrel.
		Update(patientsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": patient.ID})

	if patient.Name != "" {
		queryBuilder = queryBuilder.Set("name", patient.Name)
	}

	if patient.Status != "" {
		queryBuilder = queryBuilder.Set("status", patient.Status)
	}

	if patient.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", patient.Phone)
	}

	if patient.Email != nil {
		queryBuilder = queryBuilder.Set("email", patient.Email)
	}

	if patient.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", patient.Notes)
	}

	if !patient.FirstVisitDate.IsZero() {
		queryBuilder = queryBuilder.Set("first_visit_date", patient.FirstVisitDate)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar paciente: %w", err)
	}

	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	query, args, err := squirrel.
		Select(patientColumns...).
		From(patientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	patient, err := scanPatient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear paciente: %w", err)
	}

	return patient, nil
}

func (r *patientRepository) List(ctx context.Context, filters domain.PatientFilters) (*domain.PatientPage, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}

	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	baseBuilder := squirrel.
		Select().
		From(patientsTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Search != "" {
		baseBuilder = baseBuilder.Where(squirrel.ILike{"name": "%" + filters.Search + "%"})
	}

	if filters.Status != "" {
		baseBuilder = baseBuilder.Where(squirrel.Eq{"status": filters.Status})
	}

	countQuery, countArgs, err := baseBuilder.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar pacientes: %w", err)
	}

	query, args, err := baseBuilder.
		Columns(patientColumns...).
		OrderBy("name ASC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear pacientes: %w", err)
		}
		patients = append(patients, patient)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return &domain.PatientPage{
		Patients: patients,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(patientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar paciente: %w", err)
	}

	return nil
}

func scanPatient(row squirrel.RowScanner) (*domain.Patient, error) {
	patient := &domain.Patient{}

	err := row.Scan(
		&patient.ID,
		&patient.Name,
		&patient.Phone,
		&patient.Email,
		&patient.FirstVisitDate,
		&patient.Status,
		&patient.Notes,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return patient, nil
}
