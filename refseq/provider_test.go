package refseq_test

import (
	"testing"

	"github.com/mendelics/vcfcheck/refseq"
	"github.com/stretchr/testify/assert"
)

func TestNoopProviderAlwaysReportsUnknown(t *testing.T) {
	var p refseq.Provider = refseq.NoopProvider{}
	assert.Equal(t, "", p.Sequence("1", 100, 10))
}

func TestFileProviderMissingIndexErrors(t *testing.T) {
	_, err := refseq.NewFileProvider("/nonexistent/path/genome.fa")
	assert.Error(t, err)
}
