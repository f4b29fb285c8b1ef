package core

import (
	"math/rand"
	"slices"
)

// DefaultOrderCount is how many orders are open at once.
const DefaultOrderCount = 3

// OrderStore holds the authoritative list of open orders. Hosts may keep it
// next to their display code; the kitchen reads and replaces it through this
// interface only.
type OrderStore interface {
	Orders() []string
	ReplaceOrders(orders []string)
}

// memoryOrders is the OrderStore used when the host provides none.
type memoryOrders struct {
	orders []string
}

func (m *memoryOrders) Orders() []string {
	return slices.Clone(m.orders)
}

func (m *memoryOrders) ReplaceOrders(orders []string) {
	m.orders = slices.Clone(orders)
}

// OrderQueue keeps a fixed number of open orders drawn from the catalog's
// dishes. Order matters only for display.
type OrderQueue struct {
	store  OrderStore
	rng    *rand.Rand
	dishes []string
	size   int
}

// NewOrderQueue creates a queue over store. dishes should be sorted so that
// draws are reproducible for a given seed.
func NewOrderQueue(store OrderStore, rng *rand.Rand, dishes []string, size int) *OrderQueue {
	if store == nil {
		store = &memoryOrders{}
	}
	if size <= 0 {
		size = DefaultOrderCount
	}
	return &OrderQueue{
		store:  store,
		rng:    rng,
		dishes: slices.Clone(dishes),
		size:   size,
	}
}

// Orders returns the open orders.
func (q *OrderQueue) Orders() []string {
	return q.store.Orders()
}

// Size returns how many orders are kept open.
func (q *OrderQueue) Size() int {
	return q.size
}

// Contains reports whether dish is among the open orders.
func (q *OrderQueue) Contains(dish string) bool {
	return slices.Contains(q.store.Orders(), dish)
}

// Replenish tops the queue up to its size with uniform draws, with
// replacement, from every dish. A queue that somehow grew too long is cut
// back.
func (q *OrderQueue) Replenish() {
	orders := q.store.Orders()
	if len(orders) > q.size {
		orders = orders[:q.size]
	}
	for len(orders) < q.size && len(q.dishes) > 0 {
		orders = append(orders, q.dishes[q.rng.Intn(len(q.dishes))])
	}
	q.store.ReplaceOrders(orders)
}

// Consume removes one instance of dish and replenishes. Returns false, with
// the queue unchanged, when dish is not open.
func (q *OrderQueue) Consume(dish string) bool {
	orders := q.store.Orders()
	i := slices.Index(orders, dish)
	if i < 0 {
		return false
	}
	q.store.ReplaceOrders(slices.Delete(orders, i, i+1))
	q.Replenish()
	return true
}

// Reset discards every order and draws a fresh set.
func (q *OrderQueue) Reset() {
	q.store.ReplaceOrders(nil)
	q.Replenish()
}
