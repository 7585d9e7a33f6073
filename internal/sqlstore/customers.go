package sqlstore

import (
	"context"
	"fmt"

	"github.com/goliatone/go-query-cache/inventory"
)

// FetchCustomerPage returns one page of customers ordered by name. The
// filter matches name, email, or phone, mirroring the customer search box.
func (s *Store) FetchCustomerPage(ctx context.Context, pageNumber, pageSize int, filter string) (inventory.Page[inventory.Customer], error) {
	var customers []inventory.Customer

	q := s.db.NewSelect().Model(&customers).Order("name ASC")
	if filter != "" {
		pattern := "%" + filter + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}

	total, err := q.Limit(pageSize).Offset((pageNumber - 1) * pageSize).ScanAndCount(ctx)
	if err != nil {
		return inventory.Page[inventory.Customer]{}, fmt.Errorf("select customers: %w", err)
	}

	return inventory.NewPage(customers, pageNumber, pageSize, total), nil
}
