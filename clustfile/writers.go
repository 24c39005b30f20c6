package clustfile

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ssapcore/cluster"
	"github.com/katalvlaran/ssapcore/idreg"
	"github.com/katalvlaran/ssapcore/mst"
)

// WriteMergeList writes one tab-separated `<id_a> <id_b> <new_id> <dissim>`
// record per merge, ids right-aligned to a width of five, in the order
// given (ascending by dissim, as cluster.Run produces).
func WriteMergeList(w io.Writer, merges []cluster.Merge) error {
	for _, m := range merges {
		if _, err := fmt.Fprintf(w, "%5d\t%5d\t%5d\t%g\n", m.A, m.B, m.New, m.Dissim); err != nil {
			return err
		}
	}
	return nil
}

// WriteHierarchy writes one record per item: `<name>\t<group>...\n`, one
// 1-based group number per layer in assignment[item], shallowest layer
// first. reg must have a name registered for every item index referenced.
func WriteHierarchy(w io.Writer, reg *idreg.Registry, assignment [][]int) error {
	for item, groups := range assignment {
		name, err := reg.NameOf(item)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
		for _, g := range groups {
			if _, err := fmt.Fprintf(w, "\t%d", g+1); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteSpanningTree writes one `<name_u> <name_v>` line per edge, in the
// order given.
func WriteSpanningTree(w io.Writer, reg *idreg.Registry, tree []mst.Edge) error {
	for _, e := range tree {
		nameU, err := reg.NameOf(e.U)
		if err != nil {
			return err
		}
		nameV, err := reg.NameOf(e.V)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", nameU, nameV); err != nil {
			return err
		}
	}
	return nil
}

// WriteRepresentatives writes one name per line, in the order given (one
// per top-level cluster).
func WriteRepresentatives(w io.Writer, reg *idreg.Registry, reps []int) error {
	for _, item := range reps {
		name, err := reg.NameOf(item)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
	}
	return nil
}

// WriteSortedLinks writes one `<name_u> <name_v>\t<strength>\t100` line per
// link, in the order given (hierarchy.ReorderedLinks' canonicalised,
// sort-key order). strength is the negation of the recorded dissimilarity,
// matching the sign convention links files are read with under
// Strength direction.
func WriteSortedLinks(w io.Writer, reg *idreg.Registry, links []mst.Edge) error {
	for _, e := range links {
		nameU, err := reg.NameOf(e.U)
		if err != nil {
			return err
		}
		nameV, err := reg.NameOf(e.V)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\t%g\t100\n", nameU, nameV, -e.Weight); err != nil {
			return err
		}
	}
	return nil
}
