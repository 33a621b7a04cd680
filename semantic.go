package vcf

import "strconv"

// SemanticChecker enforces the cross-line invariants of spec §4.3: rules
// that no single line's grammar can express because they depend on state
// accumulated from earlier lines (declared meta, sample names, the
// previous record's position).
//
// Every check reports through the same errorPolicy the Scanner uses, so a
// semantic violation and a grammar violation on the same line interleave
// in source order in the Sink's output.
type SemanticChecker struct {
	errp *errorPolicy

	// ReportBothOnSameLine resolves the Open Question of whether a body
	// line that already failed grammar validation still gets its semantic
	// checks run. Default false: a grammatically invalid record is not
	// semantically checked, since its fields may not have materialized
	// (e.g. Position defaults to 0, which would spuriously trip the
	// monotonic-position warning).
	ReportBothOnSameLine bool

	// seenMetaIDs tracks category/ID pairs already declared, for the
	// uniqueness rule driven by categoriesRequiringUniqueID.
	seenMetaIDs map[string]map[string]bool
}

// NewSemanticChecker returns a checker that reports through errp.
func NewSemanticChecker(errp *errorPolicy) *SemanticChecker {
	return &SemanticChecker{
		errp:        errp,
		seenMetaIDs: make(map[string]map[string]bool),
	}
}

// checkMetaEntry runs after every meta line is appended to the Source
// (spec §4.3 "After each meta line"): ID uniqueness within its category,
// required-attribute presence, Number/Type enumeration validity, and the
// ALT ID prefix rule.
func (c *SemanticChecker) checkMetaEntry(state *ParsingState, entry *MetaEntry) {
	if entry.ID != "" && categoriesRequiringUniqueID[entry.Category] {
		bucket, ok := c.seenMetaIDs[entry.Category]
		if !ok {
			bucket = make(map[string]bool)
			c.seenMetaIDs[entry.Category] = bucket
		}
		if bucket[entry.ID] {
			c.errp.error(SectionMeta, entry.LineNumber, 0,
				entry.Category+" ID '"+entry.ID+"' is declared more than once")
		}
		bucket[entry.ID] = true
	}

	if !entry.Structured {
		return
	}

	if required, ok := metaRequiredAttrs[entry.Category]; ok {
		for _, attr := range required {
			if _, present := entry.Attrs[attr]; !present {
				c.errp.error(SectionMeta, entry.LineNumber, 0,
					entry.Category+" meta line is missing required attribute "+attr)
			}
		}
	}

	switch entry.Category {
	case "INFO", "FORMAT":
		if n, ok := entry.Attrs["Number"]; ok && !isValidNumber(n) {
			c.errp.error(SectionMeta, entry.LineNumber, 0,
				entry.Category+" "+entry.ID+" has an invalid Number attribute '"+n+"'")
		}
		if t, ok := entry.Attrs["Type"]; ok && !isValidType(t) {
			c.errp.error(SectionMeta, entry.LineNumber, 0,
				entry.Category+" "+entry.ID+" has an invalid Type attribute '"+t+"'")
		}
	case "ALT":
		if entry.ID != "" && !hasValidAltPrefix(entry.ID) {
			c.errp.error(SectionMeta, entry.LineNumber, 0,
				"ALT ID '"+entry.ID+"' does not begin with one of DEL, INS, DUP, INV, CNV")
		}
	}
}

// checkHeaderLine runs once the #CHROM line is accepted (spec §4.3 "After
// the header line"): sample name uniqueness, and the missing-reference
// recommendation.
func (c *SemanticChecker) checkHeaderLine(state *ParsingState) {
	seen := make(map[string]bool, len(state.Source.SampleNames))
	for _, name := range state.Source.SampleNames {
		if seen[name] {
			c.errp.warning(SectionHeader, state.LineNumber, 0,
				"Sample name '"+name+"' is declared more than once")
		}
		seen[name] = true
	}
	if len(state.Source.MetaEntries["reference"]) == 0 {
		c.errp.warning(SectionHeader, state.LineNumber, 0,
			"No ##reference meta entry was found")
	}
}

// checkRecord runs after every body record (spec §4.3 "After each body
// record"): contig declaration, monotonic position per chromosome, FILTER
// reference, INFO reference, ALT symbolic-allele reference, per-sample
// genotype well-formedness, and intra-record ploidy consistency.
func (c *SemanticChecker) checkRecord(state *ParsingState, rec *Record) {
	c.checkContig(state, rec)
	c.checkPositionOrder(state, rec)
	c.checkFilterReferences(state, rec)
	c.checkInfoReferences(state, rec)
	c.checkAltReferences(state, rec)
	c.checkGenotypes(state, rec)
	c.checkPloidy(state, rec)
}

func (c *SemanticChecker) checkContig(state *ParsingState, rec *Record) {
	if len(state.Source.MetaEntries["contig"]) == 0 {
		return // no contigs declared at all, nothing to cross-check
	}
	if state.Source.HasContig(rec.Chromosome) {
		return
	}
	if state.badDefinedContigs[rec.Chromosome] {
		return
	}
	state.badDefinedContigs[rec.Chromosome] = true
	c.errp.warning(SectionBody, rec.LineNumber, 0,
		"Chromosome '"+rec.Chromosome+"' has no matching ##contig declaration")
}

func (c *SemanticChecker) checkPositionOrder(state *ParsingState, rec *Record) {
	prev, seen := state.maxPositionByChromosome[rec.Chromosome]
	if seen && rec.Position < prev {
		c.errp.warning(SectionBody, rec.LineNumber, 0,
			"Position "+strconv.Itoa(rec.Position)+" is out of order for chromosome '"+rec.Chromosome+"' (previous "+strconv.Itoa(prev)+")")
	}
	if !seen || rec.Position > prev {
		state.maxPositionByChromosome[rec.Chromosome] = rec.Position
	}
}

func (c *SemanticChecker) checkFilterReferences(state *ParsingState, rec *Record) {
	for _, id := range rec.Filter {
		if id == "PASS" {
			continue
		}
		if _, ok := state.Source.MetaByID("FILTER", id); !ok {
			c.errp.error(SectionBody, rec.LineNumber, 0,
				"Filter ID '"+id+"' has no matching ##FILTER declaration")
		}
	}
}

func (c *SemanticChecker) checkInfoReferences(state *ParsingState, rec *Record) {
	for _, entry := range rec.Info {
		meta, declared := state.Source.MetaByID("INFO", entry.Key)
		if declared {
			if t, ok := meta.Attrs["Type"]; ok {
				kind, known := infoKindFromType(t)
				if known {
					if msg := validateInfoValue(entry.Key, kind, entry.Value, entry.Flag); msg != "" {
						c.errp.error(SectionBody, rec.LineNumber, 0, msg)
					}
				}
			}
			continue
		}
		if _, reserved := reservedInfoKeys[entry.Key]; reserved {
			continue
		}
		c.errp.error(SectionBody, rec.LineNumber, 0,
			"Info key '"+entry.Key+"' has no matching ##INFO declaration and is not a reserved key")
	}
}

// infoKindFromType maps a declared ##INFO Type attribute to the grammar
// validateInfoValue enforces. Number is not consulted: a declared
// Number=2 Integer, say, still validates each comma-separated element as
// an integer the same way a fixed-arity reserved key would.
func infoKindFromType(t string) (infoValueKind, bool) {
	switch t {
	case "Integer":
		return infoKindIntegerList, true
	case "Float":
		return infoKindFloatList, true
	case "Flag":
		return infoKindFlag, true
	case "Character":
		return infoKindCharacter, true
	case "String":
		return infoKindString, true
	default:
		return 0, false
	}
}

func (c *SemanticChecker) checkAltReferences(state *ParsingState, rec *Record) {
	for _, elem := range rec.Alternates {
		kind, id := classifyAltElement(elem)
		if kind != altKindSymbolic {
			continue
		}
		if _, ok := state.Source.MetaByID("ALT", id); !ok {
			c.errp.error(SectionBody, rec.LineNumber, 0,
				"Symbolic allele '<"+id+">' has no matching ##ALT declaration")
		}
	}
}

// checkGenotypes enforces the Record invariant that a sample's first
// sub-value is a genotype (spec §3 "samples", §7's named body diagnostic
// "Sample #N does not start with a valid genotype").
func (c *SemanticChecker) checkGenotypes(state *ParsingState, rec *Record) {
	for i, sample := range rec.Samples {
		if len(sample) == 0 {
			continue
		}
		if !isValidGenotype(sample[0]) {
			c.errp.error(SectionBody, rec.LineNumber, 0,
				"Sample #"+strconv.Itoa(i+1)+" does not start with a valid genotype")
		}
	}
}

// checkPloidy enforces intra-record ploidy consistency (Open Question
// resolution: ploidy is compared only across the samples of one record,
// never across records, since VCF allows per-variant ploidy changes at
// PAR/chrX boundaries).
func (c *SemanticChecker) checkPloidy(state *ParsingState, rec *Record) {
	formatGTIndex := -1
	for i, key := range rec.Format {
		if key == "GT" {
			formatGTIndex = i
			break
		}
	}
	if formatGTIndex < 0 {
		return
	}
	want := -1
	for i, sample := range rec.Samples {
		if formatGTIndex >= len(sample) {
			continue
		}
		count := GenotypeAlleleCount(sample[formatGTIndex])
		if count < 0 {
			continue
		}
		if want < 0 {
			want = count
			continue
		}
		if count != want {
			c.errp.warning(SectionBody, rec.LineNumber, 0,
				"Sample "+sampleNameAt(state, i)+" genotype ploidy disagrees with an earlier sample in the same record")
		}
	}
}

func sampleNameAt(state *ParsingState, i int) string {
	if i < len(state.Source.SampleNames) {
		return state.Source.SampleNames[i]
	}
	return strconv.Itoa(i)
}
