package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/violetagest/clinic-manager-api/infrastructure/database/postgres"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

const (
	transactionsTable     = "transactions t"
	transactionItemsTable = "transaction_items ti"
)

var transactionColumns = []string{
	"t.id", "t.receipt_code", "t.date", "t.patient_id", "t.total_amount",
	"t.cash_amount", "t.card_amount", "t.transfer_amount",
	"t.medical_amount", "t.aesthetic_amount", "t.cosmetic_amount",
	"t.notes", "t.created_at", "t.updated_at",
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error)
	GetItemsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.TransactionItem, error)
	GetItemsByTransactionID(ctx context.Context, transactionID string) ([]*domain.TransactionItem, error)
	Delete(ctx context.Context, id string) error
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// Create inserta el ingreso y sus líneas de detalle en una única transacción
// de base de datos: o entra todo o no entra nada.
func (r *transactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("transactions").
			Columns(
				"id", "receipt_code", "date", "patient_id", "total_amount",
				"cash_amount", "card_amount", "transfer_amount",
				"medical_amount", "aesthetic_amount", "cosmetic_amount", "notes",
			).
			Values(
				transaction.ID,
				transaction.ReceiptCode,
				transaction.Date.Format(time.DateOnly),
				transaction.PatientID,
				transaction.TotalAmount,
				transaction.CashAmount,
				transaction.CardAmount,
				transaction.TransferAmount,
				transaction.MedicalAmount,
				transaction.AestheticAmount,
				transaction.CosmeticAmount,
				transaction.Notes,
			).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error al construir la consulta: %w", err)
		}

		err = tx.QueryRowContext(ctx, query, args...).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error al insertar ingreso: %w", err)
		}

		for _, item := range transaction.Items {
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			item.TransactionID = transaction.ID

			itemQuery, itemArgs, err := squirrel.
				Insert("transaction_items").
				Columns("id", "transaction_id", "treatment_id", "quantity", "unit_price", "subtotal").
				Values(item.ID, item.TransactionID, item.TreatmentID, item.Quantity, item.UnitPrice, item.Subtotal).
				Suffix("RETURNING created_at").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("error al construir la consulta: %w", err)
			}

			if err := tx.QueryRowContext(ctx, itemQuery, itemArgs...).Scan(&item.CreatedAt); err != nil {
				return fmt.Errorf("error al insertar línea de ingreso: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return transaction, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query, args, err := squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear ingreso: %w", err)
	}

	return transaction, nil
}

// GetByDateRange devuelve los ingresos del intervalo cerrado [startDate, endDate],
// comparando solo la parte de fecha.
func (r *transactionRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error) {
	query, args, err := squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.GtOrEq{"t.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"t.date": endDate.Format(time.DateOnly)}).
		OrderBy("t.date ASC").
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

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear ingresos: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return transactions, nil
}

// GetItemsByDateRange devuelve las líneas de detalle del periodo con el nombre
// del tratamiento resuelto. El join es LEFT para no perder líneas cuyo
// tratamiento se borró del catálogo: esas llegan con TreatmentName en nil.
func (r *transactionRepository) GetItemsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.TransactionItem, error) {
	query, args, err := squirrel.
		Select(
			"ti.id", "ti.transaction_id", "ti.treatment_id",
			"ti.quantity", "ti.unit_price", "ti.subtotal", "ti.created_at",
			"tr.name",
		).
		From(transactionItemsTable).
		LeftJoin("treatments tr ON tr.id = ti.treatment_id").
		Where(squirrel.GtOrEq{"ti.created_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ti.created_at": endDate.Format(time.DateOnly)}).
		OrderBy("ti.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryItems(ctx, query, args)
}

func (r *transactionRepository) GetItemsByTransactionID(ctx context.Context, transactionID string) ([]*domain.TransactionItem, error) {
	query, args, err := squirrel.
		Select(
			"ti.id", "ti.transaction_id", "ti.treatment_id",
			"ti.quantity", "ti.unit_price", "ti.subtotal", "ti.created_at",
			"tr.name",
		).
		From(transactionItemsTable).
		LeftJoin("treatments tr ON tr.id = ti.treatment_id").
		Where(squirrel.Eq{"ti.transaction_id": transactionID}).
		OrderBy("ti.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryItems(ctx, query, args)
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	// Las líneas de detalle caen por ON DELETE CASCADE
	query, args, err := squirrel.
		Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error al borrar ingreso: %w", err)
	}

	return nil
}

func (r *transactionRepository) queryItems(ctx context.Context, query string, args []interface{}) ([]*domain.TransactionItem, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.TransactionItem, 0)
	for rows.Next() {
		item := &domain.TransactionItem{}
		err := rows.Scan(
			&item.ID,
			&item.TransactionID,
			&item.TreatmentID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.CreatedAt,
			&item.TreatmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear líneas de ingreso: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return items, nil
}

func scanTransaction(row squirrel.RowScanner) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	err := row.Scan(
		&transaction.ID,
		&transaction.ReceiptCode,
		&transaction.Date,
		&transaction.PatientID,
		&transaction.TotalAmount,
		&transaction.CashAmount,
		&transaction.CardAmount,
		&transaction.TransferAmount,
		&transaction.MedicalAmount,
		&transaction.AestheticAmount,
		&transaction.CosmeticAmount,
		&transaction.Notes,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return transaction, nil
}
