// Package pagequery models entity listings as append-only page sequences on
// top of the query cache.
//
// A ListQuery owns one (entity, filter) listing. FetchFirstPage and
// FetchNextPage extend the sequence through the entity command interface,
// caching each page under its own key; Read assembles the pages plus the
// staleness, loading, and error flags list views render from. The Registry
// shares one ListQuery per listing key across view collaborators and the
// prefetch warm-up.
package pagequery
