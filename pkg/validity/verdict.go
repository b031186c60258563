package validity

// Verdict is the categorized outcome of checking a field.
type Verdict int

const (
	Valid Verdict = iota
	Missing
	TypeMismatch
	TooShort
	TooLong
	PatternMismatch
	Custom
	Other
)

var verdictNames = map[Verdict]string{
	Valid:           "valid",
	Missing:         "missing",
	TypeMismatch:    "type-mismatch",
	TooShort:        "too-short",
	TooLong:         "too-long",
	PatternMismatch: "pattern-mismatch",
	Custom:          "custom",
	Other:           "other",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return "other"
}

// ParseVerdict resolves a verdict from its string form.
func ParseVerdict(name string) (Verdict, bool) {
	for verdict, candidate := range verdictNames {
		if candidate == name {
			return verdict, true
		}
	}
	return Other, false
}

// Override forces a verdict on top of the built-in constraints, the way a
// custom validity message does on a browser input. The zero value means no
// override is in effect.
type Override struct {
	Verdict Verdict
	Message string
}

// Active reports whether the override forces a failing verdict.
func (o Override) Active() bool {
	return o.Verdict != Valid
}

// Force returns an override for the given verdict and message. A Valid
// verdict is promoted to Custom so the override is never a no-op.
func Force(verdict Verdict, message string) Override {
	if verdict == Valid {
		verdict = Custom
	}
	return Override{Verdict: verdict, Message: message}
}
