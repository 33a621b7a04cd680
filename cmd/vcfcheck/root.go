package main

import (
	"github.com/spf13/cobra"
)

var version = "0.0.1-dev"

var rootCmd = &cobra.Command{
	Use:     "vcfcheck",
	Short:   "Validate VCF files against grammar and semantic rules",
	Version: version,
	Example: `  # Validate a plain or gzip-compressed VCF file
  vcfcheck validate sample.vcf.gz

  # Validate from stdin, stop at the first error, print JSON
  bcftools view sample.bcf | vcfcheck validate --stop-on-error --format json -`,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
