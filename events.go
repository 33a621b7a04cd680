package vcf

// FieldTag identifies which logical field a TokenBegin/TokenChar/TokenEnd
// triplet belongs to (spec §4.1: "the scanner knows which field it was
// parsing and embeds the field name in the diagnostic").
type FieldTag int

const (
	FieldNone FieldTag = iota
	FieldFileformatVersion
	FieldMetaKey
	FieldMetaSimpleValue
	FieldMetaAttrKey
	FieldMetaAttrValue
	FieldHeaderColumn
	FieldChrom
	FieldPos
	FieldID
	FieldRef
	FieldAlt
	FieldQual
	FieldFilter
	FieldInfo
	FieldFormat
	FieldSample
)

// Handler receives the Scanner's token and line events, in strict byte
// order, per spec §4.1. ParsePolicy is the package's only implementation;
// the interface exists so the scanner body (the expensive, hand-tuned
// part) never depends on what the policy does with a token.
type Handler interface {
	// BeginToken marks the first byte of a lexeme tagged tag.
	BeginToken(tag FieldTag)
	// TokenChar delivers one byte of the in-progress lexeme.
	TokenChar(b byte)
	// EndToken marks the byte past the last of the current lexeme.
	EndToken(tag FieldTag)
	// LineEnd fires once a logical line (however it terminated: grammar
	// success, resynchronization, or EOF) is fully consumed.
	LineEnd(section Section)
	// SectionError fires on the first byte that cannot be consumed in the
	// current state. column is 1-based, 0 when not meaningful.
	SectionError(section Section, column int, message string)
}
