package vcf

// ParsingState is the shared data every layer of one scan reads or writes
// (spec §3 "ParsingState", §4.5). It is scoped to a single Validator; reuse
// across an independent scan requires a fresh instance.
type ParsingState struct {
	Source  *Source
	Records int // count of records accepted so far, not retained in full

	LineNumber   int // 1-based, incremented on every '\n' including inside recovery
	ColumnNumber int // 1-based, reset to 1 on every '\n'

	// maxPositionByChromosome tracks the highest POS seen so far per
	// chromosome, to raise the monotonic-ordering warning (spec §4.3).
	maxPositionByChromosome map[string]int

	// badDefinedContigs suppresses the missing-contig warning after the
	// first occurrence per chromosome (spec §3, §4.3, §8 S6).
	badDefinedContigs map[string]bool

	// seenSampleNames is allocated but not consulted: the header-line
	// sample-name uniqueness check keeps its own local set.
	seenSampleNames map[string]bool
}

// NewParsingState returns a fresh state for a new scan of filename.
func NewParsingState(filename string) *ParsingState {
	return &ParsingState{
		Source:                  NewSource(filename),
		LineNumber:              1,
		ColumnNumber:            1,
		maxPositionByChromosome: make(map[string]int),
		badDefinedContigs:       make(map[string]bool),
		seenSampleNames:         make(map[string]bool),
	}
}

func (ps *ParsingState) advanceLine() {
	ps.LineNumber++
	ps.ColumnNumber = 1
}
