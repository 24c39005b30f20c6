package clustfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ssapcore/idreg"
	"github.com/katalvlaran/ssapcore/linkgraph"
)

// ReadLinks parses one `<id1> <id2> ...columns...` record per line from r.
// columnIndex is 1-based and selects the numerical field (so columnIndex 3
// selects the value right after the two ids in the common id1-id2-value
// layout). Ids are registered in reg on first occurrence; the returned
// Graph is grown to cover every id reg has ever assigned. Self-links
// (id1 == id2) register their id but are otherwise ignored, matching the
// front-end's tolerant treatment of degenerate input rows.
func ReadLinks(r io.Reader, reg *idreg.Registry, columnIndex int, dir LinkDirection) (*linkgraph.Graph, error) {
	if columnIndex < 3 {
		return nil, ErrInvalidInput
	}
	g := linkgraph.NewGraph(reg.Size())

	grow := func(id int) {
		for g.Size() <= id {
			g.Grow()
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < columnIndex {
			return nil, ErrInvalidInput
		}
		value, err := strconv.ParseFloat(fields[columnIndex-1], 32)
		if err != nil {
			return nil, ErrInvalidInput
		}
		dissim := float32(value)
		if dir == Strength {
			dissim = -dissim
		}

		id1 := reg.Add(fields[0])
		id2 := reg.Add(fields[1])
		grow(id1)
		grow(id2)
		if id1 == id2 {
			continue
		}
		if err := g.AddLink(id1, id2, dissim); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// CheckCutoffDirection reports (via warn) when rawCutoffs — as supplied on
// the command line, before the Strength-to-dissimilarity negation applied
// to links-file values — aren't ordered the way dir implies: ascending for
// Dissimilarity, descending for Strength (since a higher strength is a
// lower dissimilarity, and hierarchy.Build always wants ascending
// dissimilarity cutoffs). A reversed list would otherwise silently
// collapse into a degenerate hierarchy rather than failing outright.
func CheckCutoffDirection(rawCutoffs []float32, dir LinkDirection, warn WarnFunc) {
	for i := 1; i < len(rawCutoffs); i++ {
		ascending := rawCutoffs[i] >= rawCutoffs[i-1]
		wantAscending := dir == Dissimilarity
		if ascending != wantAscending {
			warn.emit("clustfile: cutoff levels not sorted in the expected direction for the given link_direction")
			return
		}
	}
}
