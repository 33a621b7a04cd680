package vcf

import "strconv"

// infoValueKind enumerates the value grammars a reserved or declared INFO
// key can require, generalizing the teacher's per-key typed-or-nil helpers
// (parseIntFromInfoMap, parseFloatFromInfoMap, parseBoolFromInfoMap,
// parseStringFromInfoMap in the teacher's info.go) into a single table the
// SemanticChecker can drive, reporting a typed Diagnostic on mismatch
// instead of silently discarding the value.
type infoValueKind int

const (
	infoKindString infoValueKind = iota
	infoKindInteger
	infoKindFloat
	infoKindFlag
	infoKindCharacter
	infoKindIntegerList
	infoKindFloatList
)

// reservedInfoKey describes the grammar of one of the fixed INFO keys
// enumerated in spec §3 ("reserved ones").
type reservedInfoKey struct {
	Key  string
	Kind infoValueKind
}

// reservedInfoKeys is the fixed table from spec §3: "AA, AC, AF, AN, BQ,
// CIGAR, DB, DP, END, H2, H3, MQ, MQ0, NS, SB, SOMATIC, VALIDATED,
// 1000G". Grounded on the same key set the teacher's info.go
// hard-codes in buildInfoSubFields, with Number widened from "1" to "list"
// where the VCF spec defines the key as Number=A or Number=. (AC, AF).
var reservedInfoKeys = map[string]reservedInfoKey{
	"AA":        {"AA", infoKindCharacter},
	"AC":        {"AC", infoKindIntegerList},
	"AF":        {"AF", infoKindFloatList},
	"AN":        {"AN", infoKindInteger},
	"BQ":        {"BQ", infoKindFloat},
	"CIGAR":     {"CIGAR", infoKindString},
	"DB":        {"DB", infoKindFlag},
	"DP":        {"DP", infoKindInteger},
	"END":       {"END", infoKindInteger},
	"H2":        {"H2", infoKindFlag},
	"H3":        {"H3", infoKindFlag},
	"MQ":        {"MQ", infoKindFloat},
	"MQ0":       {"MQ0", infoKindInteger},
	"NS":        {"NS", infoKindInteger},
	"SB":        {"SB", infoKindFloat},
	"SOMATIC":   {"SOMATIC", infoKindFlag},
	"VALIDATED": {"VALIDATED", infoKindFlag},
	"1000G":     {"1000G", infoKindFlag},
}

// altIDPrefixes lists the required prefixes for a structured ##ALT entry's
// ID, per spec §3: "ALT ids must begin with one of DEL, INS, DUP, INV, CNV,
// optionally followed by :subtype".
var altIDPrefixes = []string{"DEL", "INS", "DUP", "INV", "CNV"}

func hasValidAltPrefix(id string) bool {
	for _, p := range altIDPrefixes {
		if id == p {
			return true
		}
		if len(id) > len(p) && id[:len(p)] == p && id[len(p)] == ':' {
			return true
		}
	}
	return false
}

// isValidNumber and isValidType implement spec §3's enumerations for the
// structured-meta `Number` and `Type` attributes.
func isValidNumber(n string) bool {
	switch n {
	case "A", "R", "G", ".":
		return true
	}
	v, err := strconv.Atoi(n)
	return err == nil && v >= 0
}

func isValidType(t string) bool {
	switch t {
	case "Integer", "Float", "Flag", "Character", "String":
		return true
	}
	return false
}

// metaRequiredAttrs lists the attributes every structured meta category
// must carry, per the VCF spec (INFO/FORMAT need ID+Number+Type+
// Description, FILTER/ALT need ID+Description, contig needs only ID).
var metaRequiredAttrs = map[string][]string{
	"INFO":   {"ID", "Number", "Type", "Description"},
	"FORMAT": {"ID", "Number", "Type", "Description"},
	"FILTER": {"ID", "Description"},
	"ALT":    {"ID", "Description"},
	"contig": {"ID"},
}

// validateInfoValue checks value against the grammar implied by kind and
// returns a human-readable mismatch reason, or "" when value conforms.
func validateInfoValue(key string, kind infoValueKind, value string, isFlag bool) string {
	switch kind {
	case infoKindFlag:
		if !isFlag {
			return "Info " + key + " value is not a flag"
		}
	case infoKindInteger:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
		if _, err := strconv.Atoi(value); err != nil {
			return "Info " + key + " value is not an integer"
		}
	case infoKindFloat:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
		if !isDecimalNumber(value) {
			return "Info " + key + " value is not a number"
		}
	case infoKindCharacter:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
		if len([]rune(value)) != 1 {
			return "Info " + key + " value is not a single character"
		}
	case infoKindIntegerList:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
		for _, part := range splitNonEmpty(value, ',') {
			if _, err := strconv.Atoi(part); err != nil {
				return "Info " + key + " value is not a comma-separated list of integers"
			}
		}
	case infoKindFloatList:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
		for _, part := range splitNonEmpty(value, ',') {
			if !isDecimalNumber(part) {
				return "Info " + key + " value is not a comma-separated list of numbers"
			}
		}
	case infoKindString:
		if isFlag {
			return "Info " + key + " is missing a value"
		}
	}
	return ""
}
