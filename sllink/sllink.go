// Package sllink implements single-linkage extension over a cloud of
// tagged 3-D points: starting from a fixed core, it repeatedly absorbs
// candidate points within a distance threshold of the most recently
// absorbed batch, daisy-chaining through candidates tagged AddAndLink but
// never through those tagged AddOnly.
package sllink

// Tag marks whether an absorbed point may itself serve as a hop source
// for further absorption.
type Tag int

const (
	// AddAndLink points both absorb and radiate: once absorbed, they
	// become part of the next round's frontier.
	AddAndLink Tag = iota

	// AddOnly points are absorbed but never serve as hop sources.
	AddOnly
)

// Point is a tagged 3-D coordinate.
type Point struct {
	X, Y, Z float64
	Tag     Tag
}

func sqDist(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Extend grows the core (points[:coreSize]) by repeatedly absorbing
// candidates (points[coreSize:]) within distance of the current frontier.
// The core itself always radiates on the first round regardless of tag;
// thereafter only newly-absorbed AddAndLink points continue to radiate.
// The returned slice preserves the original relative order of the kept
// points; per the extension's contract the absolute order is otherwise
// unspecified.
func Extend(points []Point, coreSize int, distance float64) []Point {
	n := len(points)
	if coreSize < 0 {
		coreSize = 0
	}
	if coreSize > n {
		coreSize = n
	}
	d2 := distance * distance

	kept := make([]bool, n)
	for i := 0; i < coreSize; i++ {
		kept[i] = true
	}

	frontier := make([]int, coreSize)
	for i := range frontier {
		frontier[i] = i
	}

	for len(frontier) > 0 {
		var next []int
		for i := coreSize; i < n; i++ {
			if kept[i] {
				continue
			}
			for _, f := range frontier {
				if sqDist(points[i], points[f]) <= d2 {
					kept[i] = true
					if points[i].Tag == AddAndLink {
						next = append(next, i)
					}
					break
				}
			}
		}
		frontier = next
	}

	out := make([]Point, 0, n)
	for i, k := range kept {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}
