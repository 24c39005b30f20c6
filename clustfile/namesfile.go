package clustfile

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ssapcore/idreg"
)

// MissingNamesWarning is the warning text for a clustering run that
// proceeds without a names file; no function in this package emits it.
// Singleton items with no recorded sort-score may not appear in the
// hierarchy file's expected position.
const MissingNamesWarning = "clustfile: missing names file; singleton items may not be visible in the output"

// ReadNames parses one `<id> <sort-score>` record per line from r,
// registering each id in reg and returning the sort-score indexed by the id
// reg assigned it. Re-occurring ids overwrite the previously recorded
// score. Blank lines are skipped.
func ReadNames(r io.Reader, reg *idreg.Registry) ([]float64, error) {
	scores := make([]float64, 0, reg.Size())
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, ErrInvalidInput
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, ErrInvalidInput
		}
		id := reg.Add(fields[0])
		for len(scores) <= id {
			scores = append(scores, 0)
		}
		scores[id] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// SortKeyFromScores converts sort-scores (lower sorts earlier, ties
// broken by insertion order) into the dense integer rank the hierarchy
// package's SortBySortKey and ReorderedLinks consume. An id absent from
// scores (index beyond len(scores), e.g. a links-only id with no names
// file entry) sorts after every named id, in id order.
func SortKeyFromScores(scores []float64, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		sa, okA := scoreOf(scores, ia)
		sb, okB := scoreOf(scores, ib)
		if okA != okB {
			return okA
		}
		return sa < sb
	})
	rank := make([]int, n)
	for r, id := range order {
		rank[id] = r
	}
	return rank
}

func scoreOf(scores []float64, id int) (float64, bool) {
	if id < 0 || id >= len(scores) {
		return 0, false
	}
	return scores[id], true
}
