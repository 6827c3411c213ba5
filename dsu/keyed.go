package dsu

// Keyed is a Forest addressed by comparable keys. Unknown keys are added as
// singletons on first use.
type Keyed[K comparable] struct {
	forest Forest
	index  map[K]int
	keys   []K
}

// NewKeyed returns an empty Keyed forest with room for hint keys.
func NewKeyed[K comparable](hint int) *Keyed[K] {
	return &Keyed[K]{
		index: make(map[K]int, hint),
		keys:  make([]K, 0, hint),
	}
}

// id returns the arena index of k, adding it if needed.
func (d *Keyed[K]) id(k K) int {
	if i, ok := d.index[k]; ok {
		return i
	}
	i := d.forest.Add()
	d.index[k] = i
	d.keys = append(d.keys, k)

	return i
}

// Add registers k as a singleton (no-op if already present).
func (d *Keyed[K]) Add(k K) { d.id(k) }

// Has reports whether k has been registered.
func (d *Keyed[K]) Has(k K) bool {
	_, ok := d.index[k]

	return ok
}

// Find returns the representative key of k's set.
func (d *Keyed[K]) Find(k K) K { return d.keys[d.forest.Find(d.id(k))] }

// Union merges the sets of a and b and reports whether they were distinct.
func (d *Keyed[K]) Union(a, b K) bool { return d.forest.Union(d.id(a), d.id(b)) }

// Connected reports whether a and b share a set. Unregistered keys are
// only connected to themselves.
func (d *Keyed[K]) Connected(a, b K) bool {
	if a == b {
		return true
	}
	ia, okA := d.index[a]
	ib, okB := d.index[b]
	if !okA || !okB {
		return false
	}

	return d.forest.Connected(ia, ib)
}

// Len returns the number of registered keys.
func (d *Keyed[K]) Len() int { return d.forest.Len() }

// Sets returns the number of disjoint sets among registered keys.
func (d *Keyed[K]) Sets() int { return d.forest.Sets() }
