package car

import "sort"

type SortOrder string

const (
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// ParseSortOrder falls back to ascending for anything unrecognized.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortPriceDesc) {
		return SortPriceDesc
	}
	return SortPriceAsc
}

// Hint is the sort parameter passed to the upstream availability query.
// The client still re-sorts locally so sort-order changes stay instant.
func (o SortOrder) Hint() string {
	if o == SortPriceDesc {
		return "desc"
	}
	return "asc"
}

// SortByPrice returns a copy sorted by per-day price. The sort is stable:
// price ties keep the server's original order.
func SortByPrice(cars []Car, order SortOrder) []Car {
	sorted := make([]Car, len(cars))
	copy(sorted, cars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortPriceDesc {
			return sorted[i].Price > sorted[j].Price
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}
