package main

import (
	"testing"

	vcf "github.com/mendelics/vcfcheck"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeCleanWithWarningsIsZero(t *testing.T) {
	diags := []vcf.Diagnostic{{Severity: vcf.SeverityWarning, Section: vcf.SectionHeader, Message: "no reference"}}
	assert.Equal(t, 0, exitCode(diags))
}

func TestExitCodeAnyErrorIsNonzero(t *testing.T) {
	diags := []vcf.Diagnostic{
		{Severity: vcf.SeverityWarning, Section: vcf.SectionHeader, Message: "no reference"},
		{Severity: vcf.SeverityError, Section: vcf.SectionBody, Message: "bad quality"},
	}
	assert.Equal(t, 1, exitCode(diags))
}

func TestExitCodeEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
}
