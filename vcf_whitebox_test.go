package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type FieldGrammarSuite struct {
	suite.Suite
}

func (s *FieldGrammarSuite) TestIsChromosomeToken() {
	assert.True(s.T(), isChromosomeToken("1"))
	assert.True(s.T(), isChromosomeToken("chrX"))
	assert.True(s.T(), isChromosomeToken("<CTG1>"))
	assert.False(s.T(), isChromosomeToken(""))
	assert.False(s.T(), isChromosomeToken("<>"))
	assert.False(s.T(), isChromosomeToken("chr 1"))
	assert.False(s.T(), isChromosomeToken("chr1:100"))
}

func (s *FieldGrammarSuite) TestIdListValid() {
	assert.True(s.T(), idListValid("."))
	assert.True(s.T(), idListValid("rs123"))
	assert.True(s.T(), idListValid("rs123;rs456"))
	assert.False(s.T(), idListValid(""))
	assert.False(s.T(), idListValid("rs123; rs456"))
}

func (s *FieldGrammarSuite) TestIsBaseString() {
	assert.True(s.T(), isBaseString("ACGT"))
	assert.True(s.T(), isBaseString("acgtn"))
	assert.False(s.T(), isBaseString(""))
	assert.False(s.T(), isBaseString("ACGTX"))
}

func (s *FieldGrammarSuite) TestClassifyAltElement() {
	kind, _ := classifyAltElement(".")
	assert.Equal(s.T(), altKindMissing, kind)

	kind, _ = classifyAltElement("*")
	assert.Equal(s.T(), altKindStar, kind)

	kind, id := classifyAltElement("<DEL>")
	assert.Equal(s.T(), altKindSymbolic, kind)
	assert.Equal(s.T(), "DEL", id)

	kind, _ = classifyAltElement("ACGT")
	assert.Equal(s.T(), altKindBase, kind)

	kind, _ = classifyAltElement("N[chr1:100[")
	assert.Equal(s.T(), altKindBreakend, kind)

	kind, _ = classifyAltElement("<>")
	assert.Equal(s.T(), altKindInvalid, kind)

	kind, _ = classifyAltElement("acgtX")
	assert.Equal(s.T(), altKindInvalid, kind)
}

func (s *FieldGrammarSuite) TestIsBreakendRejectsMalformed() {
	assert.False(s.T(), isBreakend("N[chr1:notanumber["))
	assert.False(s.T(), isBreakend("N[chr1["))
	assert.False(s.T(), isBreakend("plain"))
}

func (s *FieldGrammarSuite) TestIsFormatValid() {
	assert.True(s.T(), isFormatValid("GT"))
	assert.True(s.T(), isFormatValid("GT:AD:DP"))
	assert.False(s.T(), isFormatValid(""))
	assert.False(s.T(), isFormatValid("GT::DP"))
	assert.False(s.T(), isFormatValid("GT:A-D"))
}

func (s *FieldGrammarSuite) TestIsValidGenotype() {
	assert.True(s.T(), isValidGenotype("0/1"))
	assert.True(s.T(), isValidGenotype("0|1"))
	assert.True(s.T(), isValidGenotype("0"))
	assert.True(s.T(), isValidGenotype("./."))
	assert.False(s.T(), isValidGenotype(""))
	assert.False(s.T(), isValidGenotype("abc"))
	assert.False(s.T(), isValidGenotype("0/"))
}

func TestFieldGrammarSuite(t *testing.T) {
	suite.Run(t, new(FieldGrammarSuite))
}

type PositionQualitySuite struct {
	suite.Suite
}

func (s *PositionQualitySuite) TestParsePosition() {
	pos, errMsg := parsePosition("1000")
	assert.Equal(s.T(), 1000, pos)
	assert.Empty(s.T(), errMsg)

	_, errMsg = parsePosition("-1")
	assert.NotEmpty(s.T(), errMsg)

	_, errMsg = parsePosition("")
	assert.NotEmpty(s.T(), errMsg)

	_, errMsg = parsePosition("12a")
	assert.NotEmpty(s.T(), errMsg)
}

func (s *PositionQualitySuite) TestParseQuality() {
	q, errMsg := parseQuality(".")
	assert.Nil(s.T(), q)
	assert.Empty(s.T(), errMsg)

	q, errMsg = parseQuality("40")
	assert.NotNil(s.T(), q)
	assert.Equal(s.T(), 40.0, *q)
	assert.Empty(s.T(), errMsg)

	q, errMsg = parseQuality("40.5")
	assert.NotNil(s.T(), q)
	assert.Equal(s.T(), 40.5, *q)

	_, errMsg = parseQuality("-1")
	assert.NotEmpty(s.T(), errMsg)

	_, errMsg = parseQuality("notanumber")
	assert.NotEmpty(s.T(), errMsg)
}

func TestPositionQualitySuite(t *testing.T) {
	suite.Run(t, new(PositionQualitySuite))
}

type ReservedInfoSuite struct {
	suite.Suite
}

func (s *ReservedInfoSuite) TestFlagKeyRejectsValue() {
	msg := validateInfoValue("DB", infoKindFlag, "", true)
	assert.Empty(s.T(), msg)

	msg = validateInfoValue("DB", infoKindFlag, "1", false)
	assert.NotEmpty(s.T(), msg)
}

func (s *ReservedInfoSuite) TestIntegerKeyRejectsNonInteger() {
	msg := validateInfoValue("DP", infoKindInteger, "41", false)
	assert.Empty(s.T(), msg)

	msg = validateInfoValue("DP", infoKindInteger, "abc", false)
	assert.NotEmpty(s.T(), msg)
}

func (s *ReservedInfoSuite) TestFloatListAcceptsCommaSeparated() {
	msg := validateInfoValue("AF", infoKindFloatList, "0.5,0.25", false)
	assert.Empty(s.T(), msg)

	msg = validateInfoValue("AF", infoKindFloatList, "0.5,oops", false)
	assert.NotEmpty(s.T(), msg)
}

func (s *ReservedInfoSuite) TestCharacterKeyRequiresSingleRune() {
	msg := validateInfoValue("AA", infoKindCharacter, "T", false)
	assert.Empty(s.T(), msg)

	msg = validateInfoValue("AA", infoKindCharacter, "TT", false)
	assert.NotEmpty(s.T(), msg)
}

func TestReservedInfoSuite(t *testing.T) {
	suite.Run(t, new(ReservedInfoSuite))
}

type AltMetaSuite struct {
	suite.Suite
}

func (s *AltMetaSuite) TestHasValidAltPrefix() {
	assert.True(s.T(), hasValidAltPrefix("DEL"))
	assert.True(s.T(), hasValidAltPrefix("DUP:TANDEM"))
	assert.False(s.T(), hasValidAltPrefix("BND"))
	assert.False(s.T(), hasValidAltPrefix(""))
}

func (s *AltMetaSuite) TestIsValidNumberAndType() {
	assert.True(s.T(), isValidNumber("1"))
	assert.True(s.T(), isValidNumber("A"))
	assert.True(s.T(), isValidNumber("."))
	assert.False(s.T(), isValidNumber("-1"))
	assert.False(s.T(), isValidNumber("x"))

	assert.True(s.T(), isValidType("Integer"))
	assert.False(s.T(), isValidType("Double"))
}

func TestAltMetaSuite(t *testing.T) {
	suite.Run(t, new(AltMetaSuite))
}

type GenotypeSuite struct {
	suite.Suite
}

func (s *GenotypeSuite) TestGenotypeAlleleCount() {
	assert.Equal(s.T(), 2, GenotypeAlleleCount("0/1"))
	assert.Equal(s.T(), 3, GenotypeAlleleCount("0/0/1"))
	assert.Equal(s.T(), 1, GenotypeAlleleCount("0"))
	assert.Equal(s.T(), 2, GenotypeAlleleCount("0|1"))
	assert.Equal(s.T(), -1, GenotypeAlleleCount(""))
}

func TestGenotypeSuite(t *testing.T) {
	suite.Run(t, new(GenotypeSuite))
}

type ScannerLowLevelSuite struct {
	suite.Suite
}

func (s *ScannerLowLevelSuite) newScanner() (*Scanner, *CollectingSink) {
	sink := NewCollectingSink()
	errp := newErrorPolicy(sink, false)
	state := NewParsingState("test")
	checker := NewSemanticChecker(errp)
	policy := NewParsePolicy(errp, state, checker, nil)
	return NewScanner(policy, errp, state), sink
}

func (s *ScannerLowLevelSuite) TestFeedAcrossArbitraryChunkBoundaries() {
	sc, sink := s.newScanner()
	doc := "##fileformat=VCFv4.1\n##reference=GRCh38\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n1\t100\t.\tA\tC\t.\t.\t.\n"
	for i := 0; i < len(doc); i++ {
		sc.Feed([]byte{doc[i]})
	}
	sc.EndOfInput()

	assert.True(s.T(), sc.IsAccepting())
	assert.Empty(s.T(), sink.Diagnostics)
}

func (s *ScannerLowLevelSuite) TestMalformedLineResynchronizes() {
	sc, sink := s.newScanner()
	doc := "##fileformat=VCFv4.1\n##reference=GRCh38\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\nnotenoughcolumns\n1\t100\t.\tA\tC\t.\t.\t.\n"
	sc.Feed([]byte(doc))
	sc.EndOfInput()

	// the malformed line is a grammar error, so the stream is not accepting
	assert.False(s.T(), sc.IsAccepting())
	assert.Len(s.T(), sink.Diagnostics, 1)
	assert.Equal(s.T(), SectionBody, sink.Diagnostics[0].Section)
}

func TestScannerLowLevelSuite(t *testing.T) {
	suite.Run(t, new(ScannerLowLevelSuite))
}
