package clustfile

// LinkDirection selects how a links file's numeric column is interpreted.
type LinkDirection int

const (
	// Dissimilarity reads the column value directly as a dissimilarity
	// (smaller is more similar).
	Dissimilarity LinkDirection = iota

	// Strength reads the column value as a similarity strength and
	// negates it to obtain a dissimilarity (larger strength, smaller
	// resulting dissimilarity).
	Strength
)

// WarnFunc receives non-fatal diagnostics: a cutoff list that isn't sorted
// as link_direction would imply, or a names file missing entirely. A nil
// WarnFunc discards warnings.
type WarnFunc func(message string)

func (w WarnFunc) emit(message string) {
	if w != nil {
		w(message)
	}
}
