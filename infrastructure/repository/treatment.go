package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/violetagest/clinic-manager-api/infrastructure/database/postgres"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

const treatmentsTable = "treatments"

// ErrDuplicateCode se devuelve cuando el código de tratamiento ya existe
var ErrDuplicateCode = errors.New("código de tratamiento duplicado")

var treatmentColumns = []string{
	"id", "name", "code", "category_id", "type", "base_price",
	"base_time_mins", "description", "is_active", "created_at", "updated_at",
}

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	Update(ctx context.Context, treatment *domain.Treatment) error
	GetByID(ctx context.Context, id string) (*domain.Treatment, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Treatment, error)
	Delete(ctx context.Context, id string) error
}

type treatmentRepository struct {
	conn *postgres.Connection
}

func NewTreatmentRepository(conn *postgres.Connection) TreatmentRepository {
	return &treatmentRepository{
		conn: conn,
	}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	if treatment.ID == "" {
		treatment.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(treatmentsTable).
		Columns("id", "name", "code", "category_id", "type", "base_price", "base_time_mins", "description", "is_active").
		Values(
			treatment.ID,
			treatment.Name,
			treatment.Code,
			treatment.CategoryID,
			treatment.Type,
			treatment.BasePrice,
			treatment.BaseTimeMins,
			treatment.Description,
			treatment.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&treatment.CreatedAt, &treatment.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("código %s: %w", treatment.Code, ErrDuplicateCode)
		}
		return nil, fmt.Errorf("error al insertar tratamiento: %w", err)
	}

	return treatment, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *domain.Treatment) error {
	queryBuilder := squirrel.
		Update(treatmentsTable).
		Set("is_active", treatment.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": treatment.ID})

	if treatment.Name != "" {
		queryBuilder = queryBuilder.Set("name", treatment.Name)
	}

	if treatment.CategoryID != "" {
		queryBuilder = queryBuilder.Set("category_id", treatment.CategoryID)
	}

	if treatment.Type != "" {
		queryBuilder = queryBuilder.Set("type", treatment.Type)
	}

	if treatment.BasePrice > 0 {
		queryBuilder = queryBuilder.Set("base_price", treatment.BasePrice)
	}

	if treatment.BaseTimeMins > 0 {
		queryBuilder = queryBuilder.Set("base_time_mins", treatment.BaseTimeMins)
	}

	if treatment.Description != nil {
		queryBuilder = queryBuilder.Set("description", treatment.Description)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar tratamiento: %w", err)
	}

	return nil
}

func (r *treatmentRepository) GetByID(ctx context.Context, id string) (*domain.Treatment, error) {
	query, args, err := squirrel.
		Select(treatmentColumns...).
		From(treatmentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	treatment, err := scanTreatment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear tratamiento: %w", err)
	}

	return treatment, nil
}

func (r *treatmentRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Treatment, error) {
	queryBuilder := squirrel.
		Select(treatmentColumns...).
		From(treatmentsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
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

	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		treatment, err := scanTreatment(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear tratamientos: %w", err)
		}
		treatments = append(treatments, treatment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return treatments, nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(treatmentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar tratamiento: %w", err)
	}

	return nil
}

func scanTreatment(row squirrel.RowScanner) (*domain.Treatment, error) {
	treatment := &domain.Treatment{}

	err := row.Scan(
		&treatment.ID,
		&treatment.Name,
		&treatment.Code,
		&treatment.CategoryID,
		&treatment.Type,
		&treatment.BasePrice,
		&treatment.BaseTimeMins,
		&treatment.Description,
		&treatment.Active,
		&treatment.CreatedAt,
		&treatment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return treatment, nil
}
