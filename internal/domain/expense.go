package domain

import "time"

type ExpenseCategory string

const (
	ExpenseSupplies  ExpenseCategory = "supplies"
	ExpenseEquipment ExpenseCategory = "equipment"
	ExpenseRent      ExpenseCategory = "rent"
	ExpenseUtilities ExpenseCategory = "utilities"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseOther     ExpenseCategory = "other"
)

// Expense es un gasto de la clínica. TotalAmount = Amount + IvaAmount,
// calculado por el formulario al crear el gasto.
type Expense struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	Category      ExpenseCategory `json:"category"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	IvaAmount     float64         `json:"iva_amount"`
	TotalAmount   float64         `json:"total_amount"`
	InvoiceNumber *string         `json:"invoice_number,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseSupplies, ExpenseEquipment, ExpenseRent,
		ExpenseUtilities, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}
