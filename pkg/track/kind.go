package track

import (
	"slices"
	"strings"

	"github.com/matzehuels/peptrack/pkg/errors"
)

// Kind names the panel types of the binding dashboard.
type Kind string

const (
	KindHeatmap Kind = "heatmap" // percentile heat-map, one row per allele
	KindPeptide Kind = "peptide" // peptide location bars
	KindScan    Kind = "scan"    // per-allele scan bars
	KindStacked Kind = "stacked" // stacked amino-acid frequencies
	KindCompare Kind = "compare" // reference/consensus ladder
	KindArea    Kind = "area"    // coverage area chart
)

// Gutters are the fixed pixel margins reserved for axis labels.
type Gutters struct {
	Left  float64 `json:"left" toml:"left"`
	Right float64 `json:"right" toml:"right"`
}

var defaultGutters = map[Kind]Gutters{
	KindHeatmap: {Left: 90, Right: 20},
	KindPeptide: {Left: 40, Right: 12},
	KindScan:    {Left: 40, Right: 12},
	KindStacked: {Left: 40, Right: 20},
	KindCompare: {Left: 40, Right: 20},
	KindArea:    {Left: 40, Right: 20},
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(defaultGutters))
	for k := range defaultGutters {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ParseKind resolves a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := defaultGutters[k]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown track kind %q", s)
	}
	return k, nil
}

// Gutters returns the default gutters of k. Unknown kinds get the
// narrow 40/20 layout.
func (k Kind) Gutters() Gutters {
	if g, ok := defaultGutters[k]; ok {
		return g
	}
	return Gutters{Left: 40, Right: 20}
}

// TickCount returns the number of axis ticks for a track of the given
// pixel width: one per 60px, at most 15.
func TickCount(width float64) int {
	return max(0, min(15, int(width/60)))
}
