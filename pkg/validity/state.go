package validity

// Flags is the set of failing constraint categories for one check.
type Flags uint8

const (
	FlagMissing Flags = 1 << iota
	FlagTypeMismatch
	FlagTooShort
	FlagTooLong
	FlagPatternMismatch
	FlagCustom
)

// priority lists categories from most to least significant.
var priority = []struct {
	flag    Flags
	verdict Verdict
}{
	{FlagMissing, Missing},
	{FlagTypeMismatch, TypeMismatch},
	{FlagTooShort, TooShort},
	{FlagTooLong, TooLong},
	{FlagPatternMismatch, PatternMismatch},
}

// FlagFor maps a verdict onto its flag. Custom and Other share FlagCustom.
func FlagFor(v Verdict) Flags {
	switch v {
	case Valid:
		return 0
	case Missing:
		return FlagMissing
	case TypeMismatch:
		return FlagTypeMismatch
	case TooShort:
		return FlagTooShort
	case TooLong:
		return FlagTooLong
	case PatternMismatch:
		return FlagPatternMismatch
	default:
		return FlagCustom
	}
}

// State is the result a Source reports for a single field.
type State struct {
	Flags     Flags
	Override  Override
	MinLength int
	MaxLength int
}

// Valid reports whether no constraint failed.
func (s State) Valid() bool {
	return s.Flags == 0
}

// Has reports whether the flag is set.
func (s State) Has(flag Flags) bool {
	return s.Flags&flag != 0
}

// Verdict resolves the highest priority failing category:
// missing > type-mismatch > too-short > too-long > pattern-mismatch > other.
func (s State) Verdict() Verdict {
	if s.Flags == 0 {
		return Valid
	}
	for _, entry := range priority {
		if s.Has(entry.flag) {
			return entry.verdict
		}
	}
	if s.Override.Active() {
		return s.Override.Verdict
	}
	return Other
}

// FromOverride reports whether the given verdict was forced by the override
// rather than derived only from built-in constraints.
func (s State) FromOverride(v Verdict) bool {
	return v != Valid && s.Override.Active() && s.Override.Verdict == v
}
