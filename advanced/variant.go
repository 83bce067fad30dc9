package advanced

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Variant selects one of the closest pair solvers. They all give the same
// answer, and differ only in asymptotic cost.
type Variant int

const (
	BruteForceVariant Variant = iota // O(n^2)
	NLog2NVariant                    // O(n log^2 n)
	NLogNVariant                     // O(n log n)
)

var variantNames = map[Variant]string{
	BruteForceVariant: "brute-force",
	NLog2NVariant:     "nlog2n",
	NLogNVariant:      "nlogn",
}

// All variants, slowest first.
func Variants() []Variant {
	return []Variant{BruteForceVariant, NLog2NVariant, NLogNVariant}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, candidate := range variantNames {
		if candidate == name {
			return v, nil
		}
	}
	return 0, errors.Errorf("unknown variant %q", name)
}

func (v Variant) Solve(points []Point) Distance {
	switch v {
	case BruteForceVariant:
		return BruteForce(points)
	case NLog2NVariant:
		return NLog2N(points)
	case NLogNVariant:
		return NLogN(points)
	}
	fatalf("unknown variant %d", int(v))
	return Undefined()
}
