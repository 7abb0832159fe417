package extract

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/quantalab/qce/internal/types"
)

// gateAliases maps long-form gate spellings to kinds. Near-miss names
// ("hadamrd", "tofolli") resolve against these via fuzzy matching so a
// typo degrades to the right kind instead of being dropped. Ordered
// slice, not a map: the first alias above threshold wins and results
// must be deterministic.
var gateAliases = []struct {
	name string
	kind types.GateKind
}{
	{"hadamard", types.GateH},
	{"cnot", types.GateCNOT},
	{"toffoli", types.GateToffoli},
	{"fredkin", types.GateFredkin},
	{"controlled_x", types.GateCX},
	{"controlled_z", types.GateCZ},
}

// fuzzyGateThreshold is the minimum Jaro-Winkler similarity for an alias
// match. High on purpose: a wrong kind is worse than a skipped gate.
const fuzzyGateThreshold = 0.90

// resolveGateName maps a raw gate name to a kind: exact table hit first,
// then exact alias, then fuzzy alias for names long enough to carry a
// meaningful edit distance.
func resolveGateName(name string, table map[string]types.GateKind) (types.GateKind, bool) {
	lower := strings.ToLower(name)
	if kind, ok := table[lower]; ok {
		return kind, true
	}
	for _, alias := range gateAliases {
		if lower == alias.name {
			return alias.kind, true
		}
	}
	if len(lower) < 4 {
		return "", false
	}
	for _, alias := range gateAliases {
		score, err := edlib.StringsSimilarity(lower, alias.name, edlib.JaroWinkler)
		if err == nil && float64(score) >= fuzzyGateThreshold {
			return alias.kind, true
		}
	}
	return "", false
}
