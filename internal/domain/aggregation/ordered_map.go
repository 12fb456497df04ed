package aggregation

// orderedMap is a map that remembers the position at which each key was first inserted.
// Overwriting a key keeps its original position.
type orderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{index: make(map[K]int)}
}

func (m *orderedMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

func (m *orderedMap[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.values[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

func (m *orderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *orderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key insertion order.
func (m *orderedMap[K, V]) Values() []V {
	values := make([]V, len(m.values))
	copy(values, m.values)
	return values
}
