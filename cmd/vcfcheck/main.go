// Command vcfcheck validates a VCF file against the grammar and semantic
// rules implemented by github.com/mendelics/vcfcheck.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
