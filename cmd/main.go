package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	cfgPkg "github.com/xhad/roll/pkg/config"
	"github.com/xhad/roll/pkg/extractor"
	"github.com/xhad/roll/pkg/fetcher"
	"github.com/xhad/roll/pkg/markdown"
	"github.com/xhad/roll/pkg/render"
	"github.com/xhad/roll/pkg/roller"
)

const version = "0.1.0"

type Config struct {
	URL       string
	Fast      bool
	NoColor   bool
	Seed      int64
	Timeout   time.Duration
	RateLimit float64
	Delay     time.Duration
}

func main() {
	config, ok := parseFlags()
	if !ok {
		return
	}

	if err := run(config, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() (Config, bool) {
	var config Config
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&config.URL, "url", "", "Markdown catalog URL to roll against")
	flag.BoolVar(&config.Fast, "fast", false, "Skip the spinner and print a compact result")
	flag.BoolVar(&config.Fast, "f", false, "Shorthand for -fast")
	flag.BoolVar(&config.NoColor, "no-color", false, "Disable ANSI colors")
	flag.Int64Var(&config.Seed, "seed", 0, "Seed for the rolls (0 picks a time based one)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("rollthetech v%s\n", version)
		return config, false
	}

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		log.Fatalf("invalid config: %v", errs[0])
	}

	// Flags win over the config file
	if config.URL == "" {
		config.URL = cfg.Source.URL
	}
	if config.Seed == 0 {
		config.Seed = cfg.Roll.Seed
	}
	config.Fast = config.Fast || cfg.UI.Fast
	config.NoColor = config.NoColor || cfg.UI.NoColor
	config.Timeout = cfg.Timeout()
	config.RateLimit = cfg.Source.RateLimit
	config.Delay = cfg.Delay()

	return config, true
}

func run(config Config, out io.Writer) error {
	if config.NoColor {
		color.NoColor = true
	}

	f, err := fetcher.NewWithConfig(fetcher.FetcherConfig{
		URL:       config.URL,
		Timeout:   config.Timeout,
		RateLimit: config.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to initialize fetcher: %v", fetcher.ErrFetch, err)
	}

	text, err := f.Fetch(context.Background())
	if err != nil {
		return err
	}

	catalog, err := extractor.Extract(markdown.Parse([]byte(text)))
	if err != nil {
		return err
	}

	categories := catalog.Categories()
	if len(categories) == 0 {
		return fmt.Errorf("%w: document yielded no categories", extractor.ErrParse)
	}

	r := roller.NewWithConfig(roller.RollerConfig{
		Seed:        config.Seed,
		ShowSpinner: !config.Fast,
		Delay:       config.Delay,
	})

	categoryIdx, err := r.Roll(len(categories), "Deciding a category...")
	if err != nil {
		return err
	}
	category := categories[categoryIdx]

	if config.Fast {
		fmt.Fprintln(out, render.Render(fmt.Sprintf(" → {bold}{italic}%s{-}", category)))
	}

	projects := catalog.Entries(category)
	projectIdx, err := r.Roll(len(projects), "Deciding a project...")
	if err != nil {
		return err
	}

	if config.Fast {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, render.Render(projects[projectIdx]))

	return nil
}
