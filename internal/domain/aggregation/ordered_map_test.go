package aggregation

import (
	"reflect"
	"testing"
)

func TestOrderedMapKeepsInsertionPosition(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	m.Set("c", 4)

	if got, want := m.Keys(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := m.Values(), []int{3, 2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if v, ok := m.Get("b"); !ok || v != 3 {
		t.Errorf("Get(b) = %d, %v", v, ok)
	}
	if _, ok := m.Get("z"); ok {
		t.Error("Get(z) should miss")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}
