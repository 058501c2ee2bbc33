package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/profile"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagProfile string
	flagVerbose int
	flagRGBMax  = newMaxFlag("r", "g", "b")
	flagHSLMax  = newMaxFlag("h", "s", "l")
	flagCMYKMax = newMaxFlag("c", "m", "y", "k")
	version     = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("colorconv")

var rootCmd = &cobra.Command{
	Use:   "colorconv",
	Short: "Convert colors between RGB, HSL, CMYK and hex",
	Long: `Convert colors between RGB, HSL, CMYK and hex notation.

Every model reads and writes its channels on a configurable scale. The
defaults are 0-255 for RGB, 360/100/100 for HSL and 0-1 for CMYK; change
them per run with --rgb-max, --hsl-max and --cmyk-max, or collect them in
an HCL profile passed with --profile.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagProfile, "profile", "", "path to an HCL maximums profile")
	flags.Var(flagRGBMax, "rgb-max", "RGB channel maximums, one number or three")
	flags.Var(flagHSLMax, "hsl-max", "HSL channel maximums, one number or three")
	flags.Var(flagCMYKMax, "cmyk-max", "CMYK channel maximums, one number or four")
	flags.CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// options collects the maximums from --profile and the --*-max flags, in
// that order, and checks that they resolve.
func options() ([]colorconv.Option, error) {
	var opts []colorconv.Option

	if flagProfile != "" {
		p, err := profile.Load(flagProfile)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		log.Debugf("using profile %s", flagProfile)
		opts = append(opts, p.Option())
	}

	if v, ok := flagRGBMax.get(); ok {
		opts = append(opts, colorconv.WithRGBMax(colorconv.RGBMax{R: v[0], G: v[1], B: v[2]}))
	}
	if v, ok := flagHSLMax.get(); ok {
		opts = append(opts, colorconv.WithHSLMax(colorconv.HSLMax{H: v[0], S: v[1], L: v[2]}))
	}
	if v, ok := flagCMYKMax.get(); ok {
		opts = append(opts, colorconv.WithCMYKMax(colorconv.CMYKMax{C: v[0], M: v[1], Y: v[2], K: v[3]}))
	}

	m, err := colorconv.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("maximums: rgb %+v, hsl %+v, cmyk %+v", m.RGB, m.HSL, m.CMYK)
	return opts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
