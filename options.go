package ini

// ErrorLevel controls whether the driver stops or continues past a parse
// problem (spec §4.6).
type ErrorLevel int

const (
	// StopOnAny halts on the first diagnostic of either severity.
	StopOnAny ErrorLevel = iota
	// StopOnError halts only on errors; warnings are recorded and parsing
	// continues.
	StopOnError
	// StopOnNone never halts on its own account; only the fatal-stream
	// codes (ErrBadComment, ErrRead) can still stop it.
	StopOnNone
)

// ValuePolicy is the collision policy applied when a key is inserted into
// a section that may already hold it. Spec §4.4 notes that
// "MV2S/MV1S == 1" in the source, i.e. the merge-of-values-during-section-
// merge mask and the merge-of-values-within-one-section mask drive the
// exact same dispatch routine; this port makes that literal by using one
// type for both roles.
type ValuePolicy int

const (
	PolicyError ValuePolicy = iota
	PolicyPreserve
	PolicyAllow
	PolicyOverwrite
	PolicyDetect
)

func (p ValuePolicy) valid() bool {
	return p >= PolicyError && p <= PolicyDetect
}

// MV1SPolicy and MV2SPolicy are named aliases of ValuePolicy kept so
// call sites read the way spec.md names them (first-pass insertion vs.
// insertion during a section-to-section merge), even though they share
// one implementation.
type (
	MV1SPolicy = ValuePolicy
	MV2SPolicy = ValuePolicy
)

// MSPolicy is the collision policy applied when a section header repeats
// an already-closed section's name.
type MSPolicy int

const (
	MSError MSPolicy = iota
	MSPreserve
	MSOverwrite
	MSDetect
	MSMerge
)

func (p MSPolicy) valid() bool {
	return p >= MSError && p <= MSMerge
}

// CollisionFlags bundles the three orthogonal collision masks spec §4.4
// describes. Unlike the bitmask the source packs these into, each field
// here is its own typed enum, so most of the "impossible combinations" a
// raw bitmask could represent are simply unrepresentable; Validate is left
// to catch any value smuggled in outside an enum's range. A zero-value
// struct is valid: it means MSError with PolicyError for both value masks.
type CollisionFlags struct {
	MS   MSPolicy
	MV1S MV1SPolicy
	MV2S MV2SPolicy
}

// DefaultCollisionFlags matches the source's documented default: merge
// duplicate sections, error on a duplicate key within one textual section,
// and error on a duplicate key found while merging two sections.
func DefaultCollisionFlags() CollisionFlags {
	return CollisionFlags{MS: MSMerge, MV1S: PolicyError, MV2S: PolicyError}
}

// Validate rejects a CollisionFlags value the parser cannot act on.
func (f CollisionFlags) Validate() error {
	if !f.MS.valid() || !f.MV1S.valid() || !f.MV2S.valid() {
		return ErrInvalidFlags
	}
	return nil
}

// ParseFlags is a bitwise OR of the boolean parse-mode toggles from spec §6.
type ParseFlags uint32

const (
	// NoWrap disables line folding: a line starting with whitespace never
	// continues the previous value.
	NoWrap ParseFlags = 1 << iota
	// NoSpace rejects a leading space on an indented, non-folded line.
	NoSpace
	// NoTab rejects a leading tab on an indented, non-folded line.
	NoTab
	// NoCComments disables "//" and "/* ... */" comment recognition,
	// leaving only ';' and '#'.
	NoCComments
)

func (f ParseFlags) has(bit ParseFlags) bool { return f&bit != 0 }
