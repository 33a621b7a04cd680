// Package vcf validates text against the Variant Call Format specification
// (v4.1 and related minor versions).
//
// Unlike a lenient parser, this package never repairs or normalizes data. It
// reads a byte stream once, in order, and reports every deviation from the
// grammar and from a handful of cross-line semantic rules as a stream of
// Diagnostics, each carrying a line, an optional column, a severity and a
// human-readable message. Parsing never aborts on a single bad line: the
// Scanner resynchronizes at the next newline and continues.
package vcf
