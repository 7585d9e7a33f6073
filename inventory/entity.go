package inventory

// Entity type names double as the first cache key segment, so they must stay
// stable across releases.
const (
	EntityProducts  = "products"
	EntitySuppliers = "suppliers"
	EntityCustomers = "customers"
	EntityInvoices  = "invoices"
)

// KnownEntityTypes returns every entity family the application lists. The
// prefetch warm-up iterates this set.
func KnownEntityTypes() []string {
	return []string{EntityProducts, EntitySuppliers, EntityCustomers, EntityInvoices}
}
