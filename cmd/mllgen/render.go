package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaeleberhardt310/mllwriter"
	"github.com/michaeleberhardt310/mllwriter/format"
	"github.com/michaeleberhardt310/mllwriter/internal/doctree"
)

// Flag variables.
var (
	flagFormat   string
	flagOutput   string
	flagIndent   int
	flagRaw      bool
	flagEncoding string
)

var renderCmd = &cobra.Command{
	Use:   "render <tree.(yaml|json)>",
	Short: "Render a document tree to the specified output format",
	Long: `Render reads a declarative document tree and writes it as HTML, XML,
or JSON. The format is taken from --format, or detected from the --output
file extension.

Examples:
  mllgen render page.yaml --format html
  mllgen render page.yaml --output page.html
  mllgen render data.json --output data.xml --indent 4
  mllgen render page.yaml --output page.html --encoding ISO-8859-1`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: html, xml, or json")
	renderCmd.Flags().StringVar(&flagOutput, "output", "", "Output file (default: stdout)")
	renderCmd.Flags().IntVar(&flagIndent, "indent", 0, "Whitespaces per indent step (default: writer default)")
	renderCmd.Flags().BoolVar(&flagRaw, "raw", false, "Write attribute values and text verbatim, without escaping")
	renderCmd.Flags().StringVar(&flagEncoding, "encoding", "", "Output file encoding (default: UTF-8)")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := selectFormat()
	if err != nil {
		return err
	}

	var opts []mllwriter.Option
	if flagIndent > 0 {
		opts = append(opts, mllwriter.WithIndentSize(flagIndent))
	}
	if flagRaw {
		opts = append(opts, mllwriter.WithRawValues())
	}

	w, err := format.NewWriter(f, opts...)
	if err != nil {
		return err
	}

	root, err := doctree.Load(args[0])
	if err != nil {
		return err
	}
	if err := doctree.Render(w, f, root); err != nil {
		return fmt.Errorf("rendering %s: %w", f, err)
	}

	if flagOutput == "" {
		if _, err := w.WriteTo(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
		return nil
	}
	return format.WriteFile(flagOutput, w, flagEncoding)
}

// selectFormat resolves the output format from --format, falling back to the
// --output file extension.
func selectFormat() (format.Format, error) {
	if flagFormat != "" {
		return format.Parse(flagFormat)
	}
	if flagOutput != "" {
		if f := format.Detect(flagOutput); f != format.Unknown {
			return f, nil
		}
		return format.Unknown, fmt.Errorf("cannot detect format from output file %q", flagOutput)
	}
	return format.Unknown, fmt.Errorf("either --format or --output is required")
}
