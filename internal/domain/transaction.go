package domain

import "time"

// Transaction es un ingreso registrado en caja. Los importes por método de
// pago (cash/card/transfer) y por línea de negocio (medical/aesthetic/cosmetic)
// deberían sumar el total; esa coherencia la garantiza el formulario que crea
// el registro, aquí no se vuelve a comprobar.
type Transaction struct {
	ID              string    `json:"id"`
	ReceiptCode     string    `json:"receipt_code"`
	Date            time.Time `json:"date"`
	PatientID       string    `json:"patient_id"`
	TotalAmount     float64   `json:"total_amount"`
	CashAmount      float64   `json:"cash_amount"`
	CardAmount      float64   `json:"card_amount"`
	TransferAmount  float64   `json:"transfer_amount"`
	MedicalAmount   float64   `json:"medical_amount"`
	AestheticAmount float64   `json:"aesthetic_amount"`
	CosmeticAmount  float64   `json:"cosmetic_amount"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []*TransactionItem `json:"items,omitempty"`
}

// TransactionItem es una línea de detalle de un ingreso
type TransactionItem struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	TreatmentID   string    `json:"treatment_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Subtotal      float64   `json:"subtotal"`
	CreatedAt     time.Time `json:"created_at"`

	// TreatmentName viene del join con el catálogo; queda en nil cuando el
	// tratamiento se borró después de registrar el ingreso
	TreatmentName *string `json:"treatment_name,omitempty"`
}
