package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/lsp"
	"github.com/jsvensson/colorconv/internal/profile"
	"github.com/spf13/pflag"
	_ "github.com/tliron/commonlog/simple"
)

var version = "dev"

func main() {
	flags := pflag.NewFlagSet("colorconv-lsp", pflag.ExitOnError)
	profilePath := flags.String("profile", "", "path to an HCL maximums profile for files without their own")
	verbose := flags.CountP("verbose", "v", "increase log verbosity (repeatable)")
	showVersion := flags.Bool("version", false, "print the version and exit")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(version)
		return
	}

	var opts []colorconv.Option
	if *profilePath != "" {
		p, err := profile.Load(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading profile: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, p.Option())
	}

	s := lsp.NewServer(version, opts...)
	if err := s.Run(1 + *verbose); err != nil {
		os.Exit(1)
	}
}
