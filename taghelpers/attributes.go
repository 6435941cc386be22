package taghelpers

import (
	"iter"

	"golang.org/x/text/cases"
)

type attribute[V any] struct {
	name  string
	value V
}

// Attributes is an ordered attribute bag with HTML name semantics: names are
// compared case-insensitively, the casing used on first insertion is kept
// and later writes only replace the value.
type Attributes[V any] struct {
	index map[string]int
	items []attribute[V]
}

// NewAttributes returns empty attribute bag.
func NewAttributes[V any]() *Attributes[V] {
	return &Attributes[V]{index: make(map[string]int)}
}

// Caser keeps internal state and is not safe for concurrent use, so it is
// created per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Set inserts or updates attribute value. Returns true when attribute with
// the same (case-folded) name already existed.
func (a *Attributes[V]) Set(name string, value V) bool {
	key := foldName(name)
	if i, ok := a.index[key]; ok {
		a.items[i].value = value
		return true
	}
	a.index[key] = len(a.items)
	a.items = append(a.items, attribute[V]{name: name, value: value})
	return false
}

// Get returns attribute value and the name casing stored for it.
func (a *Attributes[V]) Get(name string) (value V, stored string, ok bool) {
	i, ok := a.index[foldName(name)]
	if !ok {
		return value, "", false
	}
	return a.items[i].value, a.items[i].name, true
}

// Value is Get without the stored name.
func (a *Attributes[V]) Value(name string) (V, bool) {
	v, _, ok := a.Get(name)
	return v, ok
}

func (a *Attributes[V]) Has(name string) bool {
	_, ok := a.index[foldName(name)]
	return ok
}

// Delete removes attribute keeping relative order of the rest.
func (a *Attributes[V]) Delete(name string) bool {
	key := foldName(name)
	i, ok := a.index[key]
	if !ok {
		return false
	}
	delete(a.index, key)
	a.items = append(a.items[:i], a.items[i+1:]...)
	for ; i < len(a.items); i++ {
		a.index[foldName(a.items[i].name)] = i
	}
	return true
}

func (a *Attributes[V]) Len() int {
	return len(a.items)
}

// Keys returns attribute names in insertion order using stored casing.
func (a *Attributes[V]) Keys() []string {
	keys := make([]string, 0, len(a.items))
	for _, it := range a.items {
		keys = append(keys, it.name)
	}
	return keys
}

// All iterates over attributes in insertion order.
func (a *Attributes[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, it := range a.items {
			if !yield(it.name, it.value) {
				return
			}
		}
	}
}

// Clone returns independent shallow copy.
func (a *Attributes[V]) Clone() *Attributes[V] {
	c := &Attributes[V]{
		index: make(map[string]int, len(a.index)),
		items: make([]attribute[V], len(a.items)),
	}
	copy(c.items, a.items)
	for k, v := range a.index {
		c.index[k] = v
	}
	return c
}
