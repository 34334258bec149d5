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

const productsTable = "products"

var productColumns = []string{
	"id", "name", "supplier_id", "cost_price", "sale_price", "margin_pct",
	"stock", "min_stock", "is_active", "created_at", "updated_at",
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	GetBelowMinStock(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "supplier_id", "cost_price", "sale_price", "margin_pct", "stock", "min_stock", "is_active").
		Values(
			product.ID,
			product.Name,
			product.SupplierID,
			product.CostPrice,
			product.SalePrice,
			product.MarginPct,
			product.Stock,
			product.MinStock,
			product.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al insertar producto: %w", err)
	}

	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("is_active", product.Active).
		Set("stock", product.Stock).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID})

	if product.Name != "" {
		queryBuilder = queryBuilder.Set("name", product.Name)
	}

	if product.SupplierID != "" {
		queryBuilder = queryBuilder.Set("supplier_id", product.SupplierID)
	}

	if product.CostPrice > 0 {
		queryBuilder = queryBuilder.Set("cost_price", product.CostPrice)
	}

	if product.SalePrice > 0 {
		queryBuilder = queryBuilder.Set("sale_price", product.SalePrice)
	}

	if product.MarginPct > 0 {
		queryBuilder = queryBuilder.Set("margin_pct", product.MarginPct)
	}

	if product.MinStock > 0 {
		queryBuilder = queryBuilder.Set("min_stock", product.MinStock)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar producto: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear producto: %w", err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select(productColumns...).
		From(productsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryProducts(ctx, query, args)
}

// GetBelowMinStock devuelve los productos activos con stock en o por debajo
// del mínimo, ordenados por déficit para priorizar la reposición
func (r *productRepository) GetBelowMinStock(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Expr("stock <= min_stock")).
		OrderBy("(min_stock - stock) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryProducts(ctx, query, args)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar producto: %w", err)
	}

	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args []interface{}) ([]*domain.Product, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear productos: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return products, nil
}

func scanProduct(row squirrel.RowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.SupplierID,
		&product.CostPrice,
		&product.SalePrice,
		&product.MarginPct,
		&product.Stock,
		&product.MinStock,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
