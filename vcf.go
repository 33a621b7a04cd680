package vcf

import (
	"bufio"
	"io"
)

// Validator wires a Scanner, a ParsePolicy, a SemanticChecker and a Sink
// together into the single entry point spec §2 describes: feed it bytes,
// in any chunking, and read back Diagnostics in source order.
//
// Validator generalizes the teacher's ToChannel: where ToChannel parsed a
// whole io.Reader into Variant values on a channel, Validator streams
// Diagnostics instead, since the job here is reporting grammar and
// semantic deviations, not reconstructing variant records for consumption
// elsewhere.
type Validator struct {
	scanner *Scanner
	errp    *errorPolicy
	state   *ParsingState
}

// Option configures a Validator at construction time.
type Option func(*validatorConfig)

type validatorConfig struct {
	sink                 Sink
	stopOnFirstError     bool
	reportBothOnSameLine bool
	onRecord             func(*Record)
}

// WithSink directs diagnostics to sink instead of the default
// CollectingSink.
func WithSink(sink Sink) Option {
	return func(c *validatorConfig) { c.sink = sink }
}

// WithStopOnFirstError implements the opt-in policy switch of spec §7:
// once the first SeverityError diagnostic is reported, all further Feed
// calls are no-ops and EndOfInput leaves the Validator in a halted,
// non-accepting state.
func WithStopOnFirstError() Option {
	return func(c *validatorConfig) { c.stopOnFirstError = true }
}

// WithReportBothOnSameLine sets SemanticChecker.ReportBothOnSameLine,
// resolving the Open Question of whether a body line that already failed
// grammar validation still gets its semantic checks run. By default a
// grammatically invalid record is not semantically checked.
func WithReportBothOnSameLine() Option {
	return func(c *validatorConfig) { c.reportBothOnSameLine = true }
}

// WithRecordObserver registers fn to receive every successfully scanned
// Record, in addition to the diagnostics a Validator always produces. Used
// by callers (e.g. a future normalization pass) that need the logical
// records, not just the pass/fail report.
func WithRecordObserver(fn func(*Record)) Option {
	return func(c *validatorConfig) { c.onRecord = fn }
}

// NewValidator returns a Validator ready to receive Feed calls for a
// stream identified by filename (used only as informational state on the
// resulting Source; no Diagnostic currently names it).
func NewValidator(filename string, opts ...Option) *Validator {
	cfg := validatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	errp := newErrorPolicy(cfg.sink, cfg.stopOnFirstError)
	state := NewParsingState(filename)
	checker := NewSemanticChecker(errp)
	checker.ReportBothOnSameLine = cfg.reportBothOnSameLine
	policy := NewParsePolicy(errp, state, checker, cfg.onRecord)
	scanner := NewScanner(policy, errp, state)
	return &Validator{scanner: scanner, errp: errp, state: state}
}

// Feed submits the next chunk of input bytes. Chunk boundaries never
// change the sequence of Diagnostics produced (spec §8 P1).
func (v *Validator) Feed(data []byte) {
	v.scanner.Feed(data)
}

// EndOfInput signals that no further bytes will arrive.
func (v *Validator) EndOfInput() {
	v.scanner.EndOfInput()
}

// IsAccepting reports whether the stream consumed so far is a complete,
// grammatically valid VCF document.
func (v *Validator) IsAccepting() bool {
	return v.scanner.IsAccepting()
}

// Source exposes the accumulated header state (version, meta entries,
// sample names) once scanning has progressed past the header line.
func (v *Validator) Source() *Source {
	return v.state.Source
}

// Validate reads r to completion through a buffered reader (matching the
// teacher's 100KiB bufio.NewReaderSize sizing in ToChannel) and returns
// every Diagnostic produced, in source order. A non-nil error is only a
// read error from r; grammar and semantic problems are never returned as
// error, only as Diagnostics, per spec §4.4 ("no exceptions").
func Validate(r io.Reader, opts ...Option) ([]Diagnostic, error) {
	sink := NewCollectingSink()
	opts = append([]Option{WithSink(sink)}, opts...)
	v := NewValidator("", opts...)

	buffered := bufio.NewReaderSize(r, 100*1024)
	chunk := make([]byte, 64*1024)
	for {
		n, err := buffered.Read(chunk)
		if n > 0 {
			v.Feed(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return sink.Diagnostics, err
		}
	}
	v.EndOfInput()
	return sink.Diagnostics, nil
}
