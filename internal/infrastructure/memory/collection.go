package memory

import "slices"

// collection mapa identidad -> entidad que conserva el orden de inserción.
// No es segura para uso concurrente; la protege el lock del Store.
type collection[K comparable, V any] struct {
	key   func(V) K
	index map[K]int
	items []V
}

func newCollection[K comparable, V any](key func(V) K) *collection[K, V] {
	return &collection[K, V]{key: key, index: make(map[K]int)}
}

// upsert inserta al final si la identidad no existe; si existe reemplaza el registro completo en su lugar.
func (c *collection[K, V]) upsert(v V) {
	k := c.key(v)
	if i, ok := c.index[k]; ok {
		c.items[i] = v
		return
	}
	c.index[k] = len(c.items)
	c.items = append(c.items, v)
}

func (c *collection[K, V]) remove(k K) bool {
	i, ok := c.index[k]
	if !ok {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	delete(c.index, k)
	for j := i; j < len(c.items); j++ {
		c.index[c.key(c.items[j])] = j
	}
	return true
}

func (c *collection[K, V]) find(k K) (V, bool) {
	if i, ok := c.index[k]; ok {
		return c.items[i], true
	}
	var zero V
	return zero, false
}

func (c *collection[K, V]) all() []V {
	out := make([]V, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[K, V]) reset(items []V) {
	c.index = make(map[K]int, len(items))
	c.items = nil
	for _, v := range items {
		c.upsert(v)
	}
}
