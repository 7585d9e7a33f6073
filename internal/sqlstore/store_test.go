package sqlstore

import (
	"context"
	"testing"

	"github.com/goliatone/go-query-cache/inventory"
	"github.com/goliatone/go-query-cache/pkg/testsupport"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return store
}

func seedProducts(t *testing.T, store *Store) []inventory.Product {
	t.Helper()

	var products []inventory.Product
	testsupport.LoadFixtureJSON(t, "testdata/products.json", &products)

	if _, err := store.DB().NewInsert().Model(&products).Exec(context.Background()); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
	return products
}

func TestStore_FetchProductPage_Pagination(t *testing.T) {
	store := newTestStore(t)
	seeded := seedProducts(t, store)

	first, err := store.FetchProductPage(context.Background(), 1, 4, "")
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first.Items) != 4 {
		t.Errorf("expected 4 items, got %d", len(first.Items))
	}
	if first.TotalCount != len(seeded) {
		t.Errorf("expected total %d, got %d", len(seeded), first.TotalCount)
	}
	if !first.HasNext {
		t.Error("expected more pages after the first")
	}
	// Name ordering matches the list view.
	if first.Items[0].Name != "Ball Valve 25mm" {
		t.Errorf("expected name-ordered results, got %q first", first.Items[0].Name)
	}

	last, err := store.FetchProductPage(context.Background(), 3, 4, "")
	if err != nil {
		t.Fatalf("last page: %v", err)
	}
	if len(last.Items) != 2 {
		t.Errorf("expected 2 items on the last page, got %d", len(last.Items))
	}
	if last.HasNext {
		t.Error("expected no page after the last")
	}
}

func TestStore_FetchProductPage_FilterMatchesNameAndSKU(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)

	byName, err := store.FetchProductPage(context.Background(), 1, 50, "Valve")
	if err != nil {
		t.Fatalf("filter by name: %v", err)
	}
	if byName.TotalCount != 3 {
		t.Errorf("expected 3 valve products, got %d", byName.TotalCount)
	}

	bySKU, err := store.FetchProductPage(context.Background(), 1, 50, "CP-0")
	if err != nil {
		t.Fatalf("filter by sku: %v", err)
	}
	if bySKU.TotalCount != 2 {
		t.Errorf("expected 2 copper pipe SKUs, got %d", bySKU.TotalCount)
	}

	none, err := store.FetchProductPage(context.Background(), 1, 50, "no-such-product")
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if len(none.Items) != 0 || none.HasNext {
		t.Errorf("expected an empty page, got %+v", none)
	}
}

func TestStore_FetchCustomerPage(t *testing.T) {
	store := newTestStore(t)

	email := "asha@example.com"
	customers := []inventory.Customer{
		{Name: "Asha Nair", Email: &email},
		{Name: "Binu Thomas"},
		{Name: "Chitra Menon"},
	}
	if _, err := store.DB().NewInsert().Model(&customers).Exec(context.Background()); err != nil {
		t.Fatalf("failed to seed customers: %v", err)
	}

	page, err := store.FetchCustomerPage(context.Background(), 1, 2, "")
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(page.Items) != 2 || page.TotalCount != 3 || !page.HasNext {
		t.Errorf("unexpected page: items=%d total=%d hasNext=%v", len(page.Items), page.TotalCount, page.HasNext)
	}

	match, err := store.FetchCustomerPage(context.Background(), 1, 50, "asha@")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if match.TotalCount != 1 || match.Items[0].Name != "Asha Nair" {
		t.Errorf("expected the email filter to match one customer, got %+v", match)
	}
}
