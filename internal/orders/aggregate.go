package orders

import (
	"sort"

	"github.com/deividaspetraitis/orderbook-data/internal/model"
)

// Page is one window into a sorted order list.
type Page struct {
	Orders []model.Order
	Total  int
	Offset int
	Limit  int
}

// HasMore reports whether orders exist beyond this page.
func (p Page) HasMore() bool {
	return p.Offset+len(p.Orders) < p.Total
}

// sortOrders orders newest first; order id descending breaks placement
// time ties so pagination is stable.
func sortOrders(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].PlacedAt != orders[j].PlacedAt {
			return orders[i].PlacedAt > orders[j].PlacedAt
		}
		return orders[i].OrderID > orders[j].OrderID
	})
}

// Paginate slices a sorted order list into a page. A limit of 0 returns
// everything from offset.
func Paginate(orders []model.Order, offset, limit int) Page {
	total := len(orders)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	return Page{
		Orders: orders[offset:end],
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}

// FilterByStatus keeps only orders with one of the given statuses.
func FilterByStatus(orders []model.Order, statuses ...model.OrderStatus) []model.Order {
	if len(statuses) == 0 {
		return orders
	}

	want := make(map[model.OrderStatus]struct{}, len(statuses))
	for _, st := range statuses {
		want[st] = struct{}{}
	}

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := want[o.Status]; ok {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterByDenomPair keeps only orders from the book for base/quote.
func FilterByDenomPair(orders []model.Order, base, quote string) []model.Order {
	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.BaseDenom == base && o.QuoteDenom == quote {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
