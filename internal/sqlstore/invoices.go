package sqlstore

import (
	"context"
	"fmt"

	"github.com/goliatone/go-query-cache/inventory"
)

// FetchInvoicePage returns one page of invoices, newest first, optionally
// filtered by invoice number substring.
func (s *Store) FetchInvoicePage(ctx context.Context, pageNumber, pageSize int, filter string) (inventory.Page[inventory.Invoice], error) {
	var invoices []inventory.Invoice

	q := s.db.NewSelect().Model(&invoices).Order("created_at DESC")
	if filter != "" {
		q = q.Where("invoice_number LIKE ?", "%"+filter+"%")
	}

	total, err := q.Limit(pageSize).Offset((pageNumber - 1) * pageSize).ScanAndCount(ctx)
	if err != nil {
		return inventory.Page[inventory.Invoice]{}, fmt.Errorf("select invoices: %w", err)
	}

	return inventory.NewPage(invoices, pageNumber, pageSize, total), nil
}
