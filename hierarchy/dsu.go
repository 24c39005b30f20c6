package hierarchy

// dsu is a plain union-find used to compute the item partition induced by
// a prefix of a merge list at one cutoff. It's sized to cover every id a
// merge might reference (items plus every synthetic cluster id), even
// though only item ids 0..n-1 are ever queried by groups.
type dsu struct {
	parent []int
}

func newDSU(size int) *dsu {
	p := make([]int, size)
	for i := range p {
		p[i] = i
	}
	return &dsu{parent: p}
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra != rb {
		d.parent[ra] = rb
	}
}

// groups partitions items 0..n-1 by root, assigning dense group indices
// deterministically in order of each group's first (lowest-id) member, so
// the result never depends on map iteration order.
func (d *dsu) groups(n int) (members [][]int, itemGroup []int) {
	rootToGroup := make(map[int]int, n)
	itemGroup = make([]int, n)
	for i := 0; i < n; i++ {
		r := d.find(i)
		gi, ok := rootToGroup[r]
		if !ok {
			gi = len(members)
			rootToGroup[r] = gi
			members = append(members, nil)
		}
		members[gi] = append(members[gi], i)
		itemGroup[i] = gi
	}
	return members, itemGroup
}
