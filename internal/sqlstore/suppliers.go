package sqlstore

import (
	"context"
	"fmt"

	"github.com/goliatone/go-query-cache/inventory"
)

// FetchSupplierPage returns one page of suppliers ordered by name,
// optionally filtered by a name substring.
func (s *Store) FetchSupplierPage(ctx context.Context, pageNumber, pageSize int, filter string) (inventory.Page[inventory.Supplier], error) {
	var suppliers []inventory.Supplier

	q := s.db.NewSelect().Model(&suppliers).Order("name ASC")
	if filter != "" {
		q = q.Where("name LIKE ?", "%"+filter+"%")
	}

	total, err := q.Limit(pageSize).Offset((pageNumber - 1) * pageSize).ScanAndCount(ctx)
	if err != nil {
		return inventory.Page[inventory.Supplier]{}, fmt.Errorf("select suppliers: %w", err)
	}

	return inventory.NewPage(suppliers, pageNumber, pageSize, total), nil
}
