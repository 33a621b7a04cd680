package vcf

// ParsePolicy receives the Scanner's token and structural events and
// materializes them into logical values: the fileformat string, a
// MetaEntry, a header column, a sample name, and finally a Record (spec
// §4.2). It holds a small per-line accumulator that is drained whenever
// the Scanner signals the line is complete.
//
// A ParsePolicy is single-threaded with respect to one Source: the Scanner
// that drives it produces events in strict source order, and nothing here
// is safe to share across scans.
type ParsePolicy struct {
	errp     *errorPolicy
	state    *ParsingState
	checker  *SemanticChecker
	onRecord func(*Record)

	// meta accumulation, live only while scanning one ##... line
	metaCategory string
	metaID       string
	metaAttrs    map[string]string
	metaAttrKeys []string // insertion order, for stable re-validation

	// header accumulation
	pendingSamples []string

	// record accumulation, live only while scanning one body line
	rec *Record

	// token accumulator reused across calls (spec §4.2: "reserve
	// aggressively and reuse across records"), unused by the higher-level
	// field setters below but kept for callers that want raw token bytes.
	tokenBuf []byte
}

// NewParsePolicy constructs a ParsePolicy writing meta/header state into
// state.Source, running semantic checks through checker, and forwarding
// diagnostics through errp. onRecord, if non-nil, receives every
// successfully scanned Record (grammar-valid or not, per the policy switch
// documented on SemanticChecker) after semantic checking runs.
func NewParsePolicy(errp *errorPolicy, state *ParsingState, checker *SemanticChecker, onRecord func(*Record)) *ParsePolicy {
	return &ParsePolicy{
		errp:     errp,
		state:    state,
		checker:  checker,
		onRecord: onRecord,
		tokenBuf: make([]byte, 0, 256),
	}
}

// --- Handler interface (generic token accumulation) ----------------------
//
// The Scanner currently drives ParsePolicy primarily through the named
// operations below (setChromosome, setPosition, ...), which it calls with
// already-validated substrings. BeginToken/TokenChar/EndToken still exist
// so ParsePolicy satisfies Handler and so a caller wiring a different
// Scanner front-end (e.g. one that truly streams single bytes with no
// line buffering) has a reuse-friendly accumulator to fall back on.

func (p *ParsePolicy) BeginToken(tag FieldTag) {
	p.tokenBuf = p.tokenBuf[:0]
}

func (p *ParsePolicy) TokenChar(b byte) {
	p.tokenBuf = append(p.tokenBuf, b)
}

func (p *ParsePolicy) EndToken(tag FieldTag) {}

func (p *ParsePolicy) LineEnd(section Section) {}

func (p *ParsePolicy) SectionError(section Section, column int, message string) {}

// --- Meta line materialization --------------------------------------------

// endOfSimpleMetaLine handles a `##key=value` line (spec §4.2
// "end_of_meta_line").
func (p *ParsePolicy) endOfSimpleMetaLine(key, value string) {
	entry := &MetaEntry{
		LineNumber: p.state.LineNumber,
		Category:   key,
		Value:      value,
	}
	if key == "reference" {
		entry.ID = value
	}
	p.acceptMeta(entry)
}

func (p *ParsePolicy) beginStructuredMeta(category string) {
	p.metaCategory = category
	p.metaAttrs = make(map[string]string, 8)
	p.metaAttrKeys = p.metaAttrKeys[:0]
}

func (p *ParsePolicy) addStructuredAttr(key, value string) {
	if _, exists := p.metaAttrs[key]; !exists {
		p.metaAttrKeys = append(p.metaAttrKeys, key)
	}
	p.metaAttrs[key] = value
	if key == "ID" {
		p.metaID = value
	}
}

func (p *ParsePolicy) endStructuredMeta() {
	entry := &MetaEntry{
		LineNumber: p.state.LineNumber,
		Category:   p.metaCategory,
		ID:         p.metaAttrs["ID"],
		Attrs:      p.metaAttrs,
		Structured: true,
	}
	p.metaID = ""
	p.acceptMeta(entry)
}

// acceptMeta appends entry to the Source and runs the post-meta-line
// semantic checks (spec §4.3 "After each meta line").
func (p *ParsePolicy) acceptMeta(entry *MetaEntry) {
	p.state.Source.addMeta(entry)
	p.checker.checkMetaEntry(p.state, entry)
}

// --- Header line materialization ------------------------------------------

func (p *ParsePolicy) recordSampleName(name string) {
	p.state.Source.SampleNames = append(p.state.Source.SampleNames, name)
}

func (p *ParsePolicy) endOfHeaderLine() {
	p.checker.checkHeaderLine(p.state)
}

// --- Body line materialization ---------------------------------------------

func (p *ParsePolicy) beginRecord(lineNumber int) {
	p.rec = &Record{LineNumber: lineNumber}
}

func (p *ParsePolicy) setChromosome(s string) { p.rec.Chromosome = s }

func (p *ParsePolicy) setPosition(pos int) { p.rec.Position = pos }

func (p *ParsePolicy) setIDs(s string) {
	p.rec.IDs = splitNonEmpty(s, ';')
}

func (p *ParsePolicy) setReference(s string) { p.rec.Reference = s }

func (p *ParsePolicy) setAlternates(s string) {
	if s == "." {
		p.rec.Alternates = nil
		return
	}
	p.rec.Alternates = splitRaw(s, ',')
}

func (p *ParsePolicy) setQuality(q *float64) { p.rec.Quality = q }

func (p *ParsePolicy) setFilter(s string) {
	if s == "." {
		p.rec.Filter = nil
		return
	}
	p.rec.Filter = splitRaw(s, ';')
}

func (p *ParsePolicy) setInfo(s string) {
	if s == "." || s == "" {
		p.rec.Info = nil
		return
	}
	parts := splitRaw(s, ';')
	entries := make([]InfoEntry, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		key, value, isFlag := splitInfoPart(part)
		entries = append(entries, InfoEntry{Key: key, Value: value, Flag: isFlag})
	}
	p.rec.Info = entries
}

func splitInfoPart(part string) (key, value string, flag bool) {
	for i := 0; i < len(part); i++ {
		if part[i] == '=' {
			return part[:i], part[i+1:], false
		}
	}
	return part, "", true
}

func (p *ParsePolicy) setFormat(s string) {
	p.rec.Format = splitRaw(s, ':')
}

func (p *ParsePolicy) addSample(s string) {
	p.rec.Samples = append(p.rec.Samples, splitRaw(s, ':'))
}

// endOfBodyLine finalizes the current Record, runs the semantic checks of
// spec §4.3 "After each body record" (unless grammarOK is false and the
// policy switch documented on SemanticChecker says to skip them), delivers
// the record to onRecord, then releases the accumulator.
func (p *ParsePolicy) endOfBodyLine(grammarOK bool) {
	rec := p.rec
	p.rec = nil
	p.state.Records++

	if grammarOK || p.checker.ReportBothOnSameLine {
		p.checker.checkRecord(p.state, rec)
	}
	if p.onRecord != nil {
		p.onRecord(rec)
	}
}
