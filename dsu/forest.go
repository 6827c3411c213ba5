package dsu

// Forest is a disjoint-set forest over the indices 0..Len()-1.
// The zero value is an empty forest; use Add or NewForest to grow it.
type Forest struct {
	parent []int
	size   []int
	sets   int
}

// NewForest returns a forest of n singleton sets.
func NewForest(n int) *Forest {
	f := &Forest{
		parent: make([]int, 0, n),
		size:   make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		f.Add()
	}

	return f
}

// Add appends a new singleton set and returns its index.
func (f *Forest) Add() int {
	i := len(f.parent)
	f.parent = append(f.parent, i)
	f.size = append(f.size, 1)
	f.sets++

	return i
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the representative of x's set. Each visited node is pointed
// at its grandparent (path halving). x must be in range.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
// The smaller set is attached under the larger one.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.sets--

	return true
}

// Connected reports whether a and b share a set.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }

// Size returns the number of elements in x's set.
func (f *Forest) Size(x int) int { return f.size[f.Find(x)] }
