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

const expensesTable = "expenses e"

var expenseColumns = []string{
	"e.id", "e.date", "e.supplier_id", "e.category", "e.description",
	"e.amount", "e.iva_amount", "e.total_amount", "e.invoice_number",
	"e.notes", "e.created_at", "e.updated_at",
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert("expenses").
		Columns(
			"id", "date", "supplier_id", "category", "description",
			"amount", "iva_amount", "total_amount", "invoice_number", "notes",
		).
		Values(
			expense.ID,
			expense.Date.Format(time.DateOnly),
			expense.SupplierID,
			expense.Category,
			expense.Description,
			expense.Amount,
			expense.IvaAmount,
			expense.TotalAmount,
			expense.InvoiceNumber,
			expense.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al insertar gasto: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	queryBuilder := squirrel.
		Update("expenses").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": expense.ID})

	if !expense.Date.IsZero() {
		queryBuilder = queryBuilder.Set("date", expense.Date.Format(time.DateOnly))
	}

	if expense.Category != "" {
		queryBuilder = queryBuilder.Set("category", expense.Category)
	}

	if expense.Description != "" {
		queryBuilder = queryBuilder.Set("description", expense.Description)
	}

	if expense.Amount > 0 {
		queryBuilder = queryBuilder.
			Set("amount", expense.Amount).
			Set("iva_amount", expense.IvaAmount).
			Set("total_amount", expense.TotalAmount)
	}

	if expense.SupplierID != nil {
		queryBuilder = queryBuilder.Set("supplier_id", expense.SupplierID)
	}

	if expense.InvoiceNumber != nil {
		queryBuilder = queryBuilder.Set("invoice_number", expense.InvoiceNumber)
	}

	if expense.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", expense.Notes)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar gasto: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	query, args, err := squirrel.
		Select(expenseColumns...).
		From(expensesTable).
		Where(squirrel.Eq{"e.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	expense, err := scanExpense(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear gasto: %w", err)
	}

	return expense, nil
}

// GetByDateRange devuelve los gastos del intervalo cerrado [startDate, endDate]
func (r *expenseRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Expense, error) {
	query, args, err := squirrel.
		Select(expenseColumns...).
		From(expensesTable).
		Where(squirrel.GtOrEq{"e.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": endDate.Format(time.DateOnly)}).
		OrderBy("e.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear gastos: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar gasto: %w", err)
	}

	return nil
}

func scanExpense(row squirrel.RowScanner) (*domain.Expense, error) {
	expense := &domain.Expense{}

	err := row.Scan(
		&expense.ID,
		&expense.Date,
		&expense.SupplierID,
		&expense.Category,
		&expense.Description,
		&expense.Amount,
		&expense.IvaAmount,
		&expense.TotalAmount,
		&expense.InvoiceNumber,
		&expense.Notes,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
