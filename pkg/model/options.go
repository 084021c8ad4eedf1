package model

// SectionLimits bound the resources a single BodyText section may consume
// while being decompressed and walked. Both caps are enforced eagerly
// (before the corresponding allocation grows past the cap), per the
// resource-exhaustion defenses required of the Section Decompressor and
// Record iterator.
type SectionLimits struct {
	// MaxDecompressedBytes caps the inflated size of one section stream.
	// Zero selects DefaultMaxDecompressedBytes.
	MaxDecompressedBytes int64
	// MaxRecords caps the number of records a single section may contain.
	// Zero selects DefaultMaxRecords.
	MaxRecords int
}

const (
	// DefaultMaxDecompressedBytes is the default per-section inflate cap (64 MiB).
	DefaultMaxDecompressedBytes = 64 * 1024 * 1024
	// DefaultMaxRecords is the default per-section record-count cap.
	DefaultMaxRecords = 200_000
)

// WithDefaults returns l with zero fields replaced by their documented
// defaults.
func (l SectionLimits) WithDefaults() SectionLimits {
	if l.MaxDecompressedBytes <= 0 {
		l.MaxDecompressedBytes = DefaultMaxDecompressedBytes
	}
	if l.MaxRecords <= 0 {
		l.MaxRecords = DefaultMaxRecords
	}
	return l
}

// OpenOptions controls safety/behavior tradeoffs for Open.
type OpenOptions struct {
	// Limits bounds per-section decompression and record counts.
	Limits SectionLimits

	// Tolerant makes OpenReader skip a BodyText section whose decompression
	// or record walk fails, logging a warning, instead of returning a parse
	// error. Unknown or undecodable individual records are skipped whatever
	// this is set to. DefaultOpenOptions sets it to true; the zero value is
	// false.
	Tolerant bool
}

// WithDefaults returns o with zero-value Limits replaced by their
// documented defaults.
func (o OpenOptions) WithDefaults() OpenOptions {
	o.Limits = o.Limits.WithDefaults()
	return o
}

// DefaultOpenOptions returns the zero-value options with defaults applied.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{Tolerant: true}.WithDefaults()
}
