package sqlstore

import (
	"context"
	"fmt"

	"github.com/goliatone/go-query-cache/inventory"
)

// FetchProductPage returns one page of products ordered by name. A non-empty
// filter is matched as a substring against name and SKU, the same search the
// product list view offers.
func (s *Store) FetchProductPage(ctx context.Context, pageNumber, pageSize int, filter string) (inventory.Page[inventory.Product], error) {
	var products []inventory.Product

	q := s.db.NewSelect().Model(&products).Order("name ASC")
	if filter != "" {
		pattern := "%" + filter + "%"
		q = q.Where("name LIKE ? OR sku LIKE ?", pattern, pattern)
	}

	total, err := q.Limit(pageSize).Offset((pageNumber - 1) * pageSize).ScanAndCount(ctx)
	if err != nil {
		return inventory.Page[inventory.Product]{}, fmt.Errorf("select products: %w", err)
	}

	return inventory.NewPage(products, pageNumber, pageSize, total), nil
}
