package core_test

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

type sliceStore struct{ orders []string }

func (s *sliceStore) Orders() []string              { return slices.Clone(s.orders) }
func (s *sliceStore) ReplaceOrders(orders []string) { s.orders = slices.Clone(orders) }

func TestOrderQueueReplenish(t *testing.T) {
	dishes := core.DefaultCatalog().Dishes()
	store := &sliceStore{}
	q := core.NewOrderQueue(store, rand.New(rand.NewSource(3)), dishes, 3)

	for i := 0; i < 50; i++ {
		q.Reset()
		if len(store.orders) != 3 {
			t.Fatalf("expected 3 orders, got %v", store.orders)
		}
		for _, o := range store.orders {
			if !slices.Contains(dishes, o) {
				t.Fatalf("order %q is not a dish", o)
			}
		}
	}

	store.orders = []string{"a", "b", "c", "d"}
	q.Replenish()
	if !reflect.DeepEqual(store.orders, []string{"a", "b", "c"}) {
		t.Errorf("expected an overlong queue cut to 3, got %v", store.orders)
	}
}

func TestOrderQueueConsume(t *testing.T) {
	store := &sliceStore{orders: []string{"lettuce_salad", "tomato_soup", "lettuce_salad"}}
	q := core.NewOrderQueue(store, rand.New(rand.NewSource(1)), core.DefaultCatalog().Dishes(), 3)

	if q.Consume("delux_salad") {
		t.Error("consumed a dish that was not ordered")
	}
	if !reflect.DeepEqual(store.orders, []string{"lettuce_salad", "tomato_soup", "lettuce_salad"}) {
		t.Errorf("queue changed on a miss: %v", store.orders)
	}

	if !q.Consume("lettuce_salad") {
		t.Fatal("expected lettuce_salad to be consumed")
	}
	if len(store.orders) != 3 {
		t.Fatalf("expected the queue topped up to 3, got %v", store.orders)
	}
	if !reflect.DeepEqual(store.orders[:2], []string{"tomato_soup", "lettuce_salad"}) {
		t.Errorf("expected only the first lettuce_salad removed, got %v", store.orders)
	}
}

func TestOrderQueueDeterministic(t *testing.T) {
	dishes := core.DefaultCatalog().Dishes()
	draw := func() []string {
		store := &sliceStore{}
		q := core.NewOrderQueue(store, rand.New(rand.NewSource(11)), dishes, 3)
		var all []string
		for i := 0; i < 10; i++ {
			q.Reset()
			all = append(all, store.orders...)
		}
		return all
	}
	if a, b := draw(), draw(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different orders:\n%v\n%v", a, b)
	}
}

func TestLedger(t *testing.T) {
	l := core.NewLedger(nil)
	steps := []struct {
		delta int
		want  int
	}{
		{-5, 0},
		{20, 20},
		{-5, 15},
		{-30, 0},
		{10, 10},
	}
	for _, s := range steps {
		if got := l.Apply(s.delta); got != s.want {
			t.Errorf("Apply(%d) = %d, want %d", s.delta, got, s.want)
		}
	}
	l.Reset()
	if l.Score() != 0 {
		t.Errorf("expected 0 after reset, got %d", l.Score())
	}
}

func TestClock(t *testing.T) {
	c := core.NewClock(3)
	if c.Tick() || c.Tick() {
		t.Fatal("clock ran out early")
	}
	if !c.Tick() {
		t.Fatal("expected the third tick to run out")
	}
	if !c.Expired() || c.Remaining() != 0 {
		t.Errorf("expected expired clock, remaining %d", c.Remaining())
	}
	if c.Tick() {
		t.Error("an expired clock should not run out twice")
	}

	untimed := core.NewClock(0)
	for i := 0; i < 100; i++ {
		if untimed.Tick() {
			t.Fatal("untimed clock ran out")
		}
	}
	if untimed.Remaining() != -1 || untimed.Expired() {
		t.Errorf("untimed clock: remaining %d expired %v", untimed.Remaining(), untimed.Expired())
	}
}
