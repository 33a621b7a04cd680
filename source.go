package vcf

// Version is the resolved VCF dialect declared by the fileformat line.
type Version int

const (
	VersionUnknown Version = iota
	Version41
	Version42
	Version43
)

func (v Version) String() string {
	switch v {
	case Version41:
		return "VCFv4.1"
	case Version42:
		return "VCFv4.2"
	case Version43:
		return "VCFv4.3"
	default:
		return "unknown"
	}
}

var versionByFileformat = map[string]Version{
	"VCFv4.1": Version41,
	"VCFv4.2": Version42,
	"VCFv4.3": Version43,
}

// MetaEntry is one meta-information line (`##key=value` or
// `##key=<attr=val,...>`).
type MetaEntry struct {
	LineNumber int
	Category   string // e.g. "INFO", "FILTER", "ALT", "contig", "reference"
	ID         string // empty when the category carries no ID

	// Value holds a freeform meta line's payload (##reference=...). Empty
	// for structured entries, which populate Attrs instead.
	Value string

	// Attrs holds a structured meta line's attribute map
	// (##INFO=<ID=...,Number=...,Type=...,Description=...>). Nil for
	// freeform entries.
	Attrs map[string]string

	// Structured is true for ##key=<...> entries, false for ##key=value.
	Structured bool
}

// categoriesRequiringUniqueID lists the meta categories whose ID must be
// unique within the category (spec §3, §4.3 P5).
var categoriesRequiringUniqueID = map[string]bool{
	"INFO":     true,
	"FORMAT":   true,
	"FILTER":   true,
	"ALT":      true,
	"contig":   true,
	"SAMPLE":   true,
	"PEDIGREE": true,
}

// Source holds everything established before the first body record:
// the fileformat version, every meta entry, and the ordered sample names
// from the header line. It is mutated by the ParsePolicy only until the
// first Record is produced, after which it is read-only in practice (the
// type itself does not enforce this; callers honor the invariant per
// spec §3).
type Source struct {
	Filename string
	Version  Version

	// MetaEntries is a multimap from category to every entry declared in
	// that category, in declaration order.
	MetaEntries map[string][]*MetaEntry

	// SampleNames is ordered; index order is significant because it maps
	// 1:1 to the Genotype columns of every body record.
	SampleNames []string

	// headerSeen is not set or read anywhere in the package; appending
	// meta entries or sample names is not gated on it.
	headerSeen bool
}

// NewSource returns an empty Source ready to accumulate meta entries.
func NewSource(filename string) *Source {
	return &Source{
		Filename:    filename,
		MetaEntries: make(map[string][]*MetaEntry),
	}
}

// MetaByID looks up a structured meta entry by category and ID, e.g.
// MetaByID("INFO", "DP").
func (s *Source) MetaByID(category, id string) (*MetaEntry, bool) {
	for _, m := range s.MetaEntries[category] {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// HasContig reports whether a ##contig=<ID=chrom,...> entry declares chrom.
func (s *Source) HasContig(chrom string) bool {
	_, ok := s.MetaByID("contig", chrom)
	return ok
}

// addMeta appends a meta entry to its category bucket.
func (s *Source) addMeta(m *MetaEntry) {
	s.MetaEntries[m.Category] = append(s.MetaEntries[m.Category], m)
}
