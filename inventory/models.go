package inventory

import "github.com/uptrace/bun"

// Product is a stocked item. Columns mirror the desktop application's
// products table; list views render the subset carried here.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID            int64    `bun:"id,pk,autoincrement" json:"id"`
	Name          string   `bun:"name,notnull" json:"name"`
	SKU           string   `bun:"sku,notnull" json:"sku"`
	Price         float64  `bun:"price,notnull" json:"price"`
	SellingPrice  *float64 `bun:"selling_price" json:"selling_price,omitempty"`
	StockQuantity int      `bun:"stock_quantity,notnull,default:0" json:"stock_quantity"`
	SupplierID    *int64   `bun:"supplier_id" json:"supplier_id,omitempty"`
	CreatedAt     string   `bun:"created_at" json:"created_at"`
	UpdatedAt     string   `bun:"updated_at" json:"updated_at"`
}

// Supplier is a product source.
type Supplier struct {
	bun.BaseModel `bun:"table:suppliers,alias:s"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	Name        string  `bun:"name,notnull" json:"name"`
	ContactInfo *string `bun:"contact_info" json:"contact_info,omitempty"`
	Address     *string `bun:"address" json:"address,omitempty"`
	Email       *string `bun:"email" json:"email,omitempty"`
	CreatedAt   string  `bun:"created_at" json:"created_at"`
	UpdatedAt   string  `bun:"updated_at" json:"updated_at"`
}

// Customer is a billing counterparty.
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	ID        int64   `bun:"id,pk,autoincrement" json:"id"`
	Name      string  `bun:"name,notnull" json:"name"`
	Email     *string `bun:"email" json:"email,omitempty"`
	Phone     *string `bun:"phone" json:"phone,omitempty"`
	Address   *string `bun:"address" json:"address,omitempty"`
	Place     *string `bun:"place" json:"place,omitempty"`
	CreatedAt string  `bun:"created_at" json:"created_at"`
	UpdatedAt string  `bun:"updated_at" json:"updated_at"`
}

// Invoice is a finalized sale.
type Invoice struct {
	bun.BaseModel `bun:"table:invoices,alias:i"`

	ID             int64   `bun:"id,pk,autoincrement" json:"id"`
	InvoiceNumber  string  `bun:"invoice_number,notnull" json:"invoice_number"`
	CustomerID     *int64  `bun:"customer_id" json:"customer_id,omitempty"`
	TotalAmount    float64 `bun:"total_amount,notnull" json:"total_amount"`
	TaxAmount      float64 `bun:"tax_amount,notnull,default:0" json:"tax_amount"`
	DiscountAmount float64 `bun:"discount_amount,notnull,default:0" json:"discount_amount"`
	PaymentMethod  *string `bun:"payment_method" json:"payment_method,omitempty"`
	CreatedAt      string  `bun:"created_at" json:"created_at"`
}
