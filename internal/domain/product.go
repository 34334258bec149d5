package domain

import "time"

// Product es un producto del inventario de la clínica
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SupplierID string    `json:"supplier_id"`
	CostPrice  float64   `json:"cost_price"`
	SalePrice  float64   `json:"sale_price"`
	MarginPct  float64   `json:"margin_pct"`
	Stock      int       `json:"stock"`
	MinStock   int       `json:"min_stock"`
	Active     bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BelowMinStock indica si el producto necesita reposición
func (p *Product) BelowMinStock() bool {
	return p.Stock <= p.MinStock
}
