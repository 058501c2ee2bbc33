package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jsvensson/colorconv/internal/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagNoSwatch bool

var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Show every color of a palette file in all models",
	Long: `Evaluate an HCL palette file and print each entry as hex, rgb(), hsl()
and cmyk(), on the file's maximums. When stdout is a terminal a color
swatch is drawn after each row.`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&flagNoSwatch, "no-swatch", false, "never draw color swatches")
}

func runPalette(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	p, err := palette.Load(args[0], opts...)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}
	log.Debugf("loaded %d colors from %s", len(p.Colors), args[0])

	w := cmd.OutOrStdout()
	var out *termenv.Output
	if !flagNoSwatch && isTerminal(w) {
		out = termenv.NewOutput(w)
	}
	return writePalette(w, p, out)
}

// writePalette prints one aligned row per entry. Swatches are drawn with out
// when it is non-nil; they come last so escape codes never skew the columns.
func writePalette(w io.Writer, p *palette.Palette, out *termenv.Output) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range p.Entries() {
		n, err := p.Notate(e.Color)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t", e.Name, n.Hex, n.RGB, n.HSL, n.CMYK)
		if out != nil {
			fmt.Fprint(tw, out.String("    ").Background(out.Color(n.Hex)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
