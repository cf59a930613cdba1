// Command mjsprobe runs the page bootstrapper against a static HTML file and
// prints the resulting document.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattsenior/mjs/internal/bootstrap"
	"github.com/mattsenior/mjs/internal/dom/htmldom"
	"github.com/pkg/errors"
)

func main() {
	defaults := bootstrap.DefaultConfig()
	legacyClass := flag.String("legacy-class", defaults.LegacyClass, "Root element class marking a legacy browser")
	readyClass := flag.String("ready-class", defaults.ReadyClass, "Root element class added once initialized")
	userAgent := flag.String("user-agent", "", "User agent reported by the window")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	config := bootstrap.Config{LegacyClass: *legacyClass, ReadyClass: *readyClass}
	if err := run(flag.Arg(0), config, *userAgent, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(path string, config bootstrap.Config, userAgent string, stdout, stderr io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	env, err := htmldom.Parse(f, userAgent)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(config)
	if err != nil {
		return err
	}
	state := app.Init(env)
	fmt.Fprintf(stderr, "legacy browser: %t\nbrowser tier: %s\n", state.LegacyBrowser, state.BrowserTier)
	return errors.Wrap(env.Render(stdout), "render")
}
