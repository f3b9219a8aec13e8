package repository

// table keeps rows keyed by identity while remembering insertion order.
type table[K comparable, V any] struct {
	order []K
	rows  map[K]V
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{rows: make(map[K]V)}
}

func (t *table[K, V]) insert(key K, row V) error {
	if _, exists := t.rows[key]; exists {
		return ErrAlreadyExists
	}
	t.rows[key] = row
	t.order = append(t.order, key)
	return nil
}

func (t *table[K, V]) get(key K) (V, error) {
	row, ok := t.rows[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return row, nil
}

func (t *table[K, V]) has(key K) bool {
	_, ok := t.rows[key]
	return ok
}

func (t *table[K, V]) list() []V {
	out := make([]V, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.rows[key])
	}
	return out
}
