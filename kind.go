package rmisearch

import "strings"

// Kind identifies a search strategy.
type Kind int

// Constants representing the available search strategies.
const (
	// KindLinear is the unbiased forward scan.
	KindLinear Kind = iota
	// KindBiasedLinear scans outward from the predicted position.
	KindBiasedLinear
	// KindBinary is the unbiased lower-bound binary search.
	KindBinary
	// KindBiasedBinary binary-searches the half-range picked by the prediction.
	KindBiasedBinary
	// KindExponential gallops from the start of the range.
	KindExponential
	// KindBiasedExponential gallops outward from the predicted position.
	KindBiasedExponential
	// KindBranchlessBinary is the power-of-two step descent without
	// data-dependent branches.
	KindBranchlessBinary
	// KindBiasedBranchlessBinary runs the branchless descent on the
	// half-range picked by the prediction.
	KindBiasedBranchlessBinary
	// KindVectorLinear is the lane-blocked scan for integer keys.
	KindVectorLinear
	// KindBiasedVectorLinear is the lane-blocked scan over the half-range
	// picked by the prediction.
	KindBiasedVectorLinear
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindBiasedLinear:
		return "biased-linear"
	case KindBinary:
		return "binary"
	case KindBiasedBinary:
		return "biased-binary"
	case KindExponential:
		return "exponential"
	case KindBiasedExponential:
		return "biased-exponential"
	case KindBranchlessBinary:
		return "branchless-binary"
	case KindBiasedBranchlessBinary:
		return "biased-branchless-binary"
	case KindVectorLinear:
		return "vector-linear"
	case KindBiasedVectorLinear:
		return "biased-vector-linear"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind value.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return KindLinear, true
	case "biased-linear":
		return KindBiasedLinear, true
	case "binary":
		return KindBinary, true
	case "biased-binary":
		return KindBiasedBinary, true
	case "exponential":
		return KindExponential, true
	case "biased-exponential":
		return KindBiasedExponential, true
	case "branchless-binary":
		return KindBranchlessBinary, true
	case "biased-branchless-binary":
		return KindBiasedBranchlessBinary, true
	case "vector-linear":
		return KindVectorLinear, true
	case "biased-vector-linear":
		return KindBiasedVectorLinear, true
	default:
		return KindLinear, false
	}
}

// Kinds returns all strategy kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLinear,
		KindBiasedLinear,
		KindBinary,
		KindBiasedBinary,
		KindExponential,
		KindBiasedExponential,
		KindBranchlessBinary,
		KindBiasedBranchlessBinary,
		KindVectorLinear,
		KindBiasedVectorLinear,
	}
}

// Biased reports whether the strategy uses the predicted position.
func (k Kind) Biased() bool {
	switch k {
	case KindBiasedLinear, KindBiasedBinary, KindBiasedExponential,
		KindBiasedBranchlessBinary, KindBiasedVectorLinear:
		return true
	default:
		return false
	}
}
