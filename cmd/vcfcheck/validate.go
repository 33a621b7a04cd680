package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	vcf "github.com/mendelics/vcfcheck"
)

var (
	stopOnError  bool
	outputFormat string
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a VCF file and print its diagnostics",
	Args:  cobra.MaximumNArgs(1),
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Stop scanning at the first error diagnostic")
	validateCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text|json)")
}

func runValidate(cmd *cobra.Command, args []string) {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	r, closer, err := openInput(path)
	if err != nil {
		log.Fatalf("vcfcheck: could not open %s: %v", path, err)
	}
	defer closer()

	var opts []vcf.Option
	if stopOnError {
		opts = append(opts, vcf.WithStopOnFirstError())
	}

	diags, err := vcf.Validate(r, opts...)
	if err != nil {
		log.Fatalf("vcfcheck: error reading %s: %v", path, err)
	}

	switch outputFormat {
	case "json":
		printJSON(diags)
	default:
		printText(diags)
	}

	os.Exit(exitCode(diags))
}

// openInput opens path for reading (or stdin for "-"), auto-detecting gzip
// by magic bytes rather than by file extension so piped input works too.
// The core validator only ever sees a plain, uncompressed byte stream.
func openInput(path string) (io.Reader, func() error, error) {
	var raw io.ReadCloser
	if path == "-" {
		raw = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		raw = f
	}

	buffered := bufio.NewReader(raw)
	magic, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		raw.Close()
		return nil, nil, err
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			raw.Close()
			return nil, nil, err
		}
		return gz, func() error {
			gz.Close()
			return raw.Close()
		}, nil
	}
	return buffered, raw.Close, nil
}

func printText(diags []vcf.Diagnostic) {
	for _, d := range diags {
		fmt.Println(d.String())
	}
}

type jsonDiagnostic struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Section  string `json:"section"`
	Message  string `json:"message"`
}

func printJSON(diags []vcf.Diagnostic) {
	out := make([]jsonDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = jsonDiagnostic{
			Line:     d.Line,
			Column:   d.Column,
			Severity: d.Severity.String(),
			Section:  d.Section.String(),
			Message:  d.Message,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("vcfcheck: could not encode diagnostics: %v", err)
	}
}

// exitCode implements spec §7: zero when no errors were seen, regardless of
// warnings; non-zero otherwise.
func exitCode(diags []vcf.Diagnostic) int {
	for _, d := range diags {
		if d.Severity == vcf.SeverityError {
			return 1
		}
	}
	return 0
}
