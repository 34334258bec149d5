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

const suppliersTable = "suppliers"

var supplierColumns = []string{
	"id", "name", "contact_name", "phone", "email", "address", "is_active", "created_at", "updated_at",
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type supplierRepository struct {
	conn *postgres.Connection
}

func NewSupplierRepository(conn *postgres.Connection) SupplierRepository {
	return &supplierRepository{
		conn: conn,
	}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(suppliersTable).
		Columns("id", "name", "contact_name", "phone", "email", "address", "is_active").
		Values(
			supplier.ID,
			supplier.Name,
			supplier.ContactName,
			supplier.Phone,
			supplier.Email,
			supplier.Address,
			supplier.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al insertar proveedor: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	queryBuilder := squirrel.
		Update(suppliersTable).
		Set("is_active", supplier.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": supplier.ID})

	if supplier.Name != "" {
		queryBuilder = queryBuilder.Set("name", supplier.Name)
	}

	if supplier.ContactName != nil {
		queryBuilder = queryBuilder.Set("contact_name", supplier.ContactName)
	}

	if supplier.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", supplier.Phone)
	}

	if supplier.Email != nil {
		queryBuilder = queryBuilder.Set("email", supplier.Email)
	}

	if supplier.Address != nil {
		queryBuilder = queryBuilder.Set("address", supplier.Address)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar proveedor: %w", err)
	}

	return nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	query, args, err := squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	supplier, err := scanSupplier(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear proveedor: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	queryBuilder := squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
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

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear proveedores: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return suppliers, nil
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(suppliersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar proveedor: %w", err)
	}

	return nil
}

func scanSupplier(row squirrel.RowScanner) (*domain.Supplier, error) {
	supplier := &domain.Supplier{}

	err := row.Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.ContactName,
		&supplier.Phone,
		&supplier.Email,
		&supplier.Address,
		&supplier.Active,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return supplier, nil
}
