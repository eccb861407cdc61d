// Package outbreak implements the outbreak CLI: it resolves presets and
// overrides, runs one scenario view and renders it as text or DOT.
package outbreak

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/outbreak/growth"
	"github.com/katalvlaran/outbreak/herd"
	"github.com/katalvlaran/outbreak/internal/config"
	"github.com/katalvlaran/outbreak/internal/scenario"
	"github.com/katalvlaran/outbreak/presets"
	"github.com/katalvlaran/outbreak/transmission"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Commands accepted as the first positional argument.
const (
	CommandHerd    = "herd"
	CommandSpread  = "spread"
	CommandImpact  = "impact"
	CommandAnimate = "animate"
	CommandTree    = "tree"
	CommandPresets = "presets"
)

// Output formats for the tree command.
const (
	FormatText = "text"
	FormatDOT  = "dot"
)

// ErrUsage indicates a missing or unknown command or format.
var ErrUsage = errors.New("usage: outbreak [flags] herd|spread|impact|animate|tree|presets")

// Config holds outbreak command configuration. Env tags are read with
// the OUTBREAK_ prefix.
type Config struct {
	Disease        string  `env:"DISEASE"         envDefault:"Measles (MMR)"`
	R0             float64 `env:"R0"`
	Coverage       float64 `env:"COVERAGE"        envDefault:"0.70"`
	CoveragePreset string  `env:"COVERAGE_PRESET"`
	Generations    int     `env:"GENERATIONS"     envDefault:"6"`
	Steps          int     `env:"STEPS"`
	MaxNodes       int     `env:"MAX_NODES"       envDefault:"100000"`
	PresetsFile    string  `env:"PRESETS_FILE"`
	Format         string  `env:"FORMAT"          envDefault:"text"`
	Verbose        bool    `env:"VERBOSE"`

	Command string
}

// ParseConfig reads env defaults, then flags, then the command argument.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Disease, "disease", cfg.Disease, "disease preset name")
	fs.Float64Var(&cfg.R0, "r0", cfg.R0, "override R0 (0 uses the preset)")
	fs.Float64Var(&cfg.Coverage, "coverage", cfg.Coverage, "vaccination coverage fraction in [0,1]")
	fs.StringVar(&cfg.CoveragePreset, "coverage-preset", cfg.CoveragePreset, "named coverage preset (overrides -coverage)")
	fs.IntVar(&cfg.Generations, "generations", cfg.Generations, "number of generations (tree: at most 8, 0 selects 8)")
	fs.IntVar(&cfg.Steps, "step", cfg.Steps, "animate: number of next-generation clicks")
	fs.IntVar(&cfg.MaxNodes, "max-nodes", cfg.MaxNodes, "tree: node ceiling")
	fs.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "path to a YAML preset catalog")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "tree output format: text or dot")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, ErrUsage
	}
	cfg.Command = strings.ToLower(fs.Arg(0))
	return cfg, nil
}

// Run executes one command and writes its report to out. Diagnostics go
// to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := log.New(errOut, "", 0)
	debugf := func(format string, args ...any) {
		if cfg.Verbose {
			logger.Printf(format, args...)
		}
	}

	cat := presets.Default()
	if cfg.PresetsFile != "" {
		loaded, err := presets.LoadFile(cfg.PresetsFile)
		if err != nil {
			return err
		}
		cat = loaded
		debugf("loaded %d disease presets from %s", len(cat.Diseases()), cfg.PresetsFile)
	}

	r := &reporter{w: out, p: message.NewPrinter(language.English)}
	if cfg.Command == CommandPresets {
		r.presets(cat)
		return r.err
	}

	params, err := scenario.Resolve(cat, scenario.Selection{
		Disease:        cfg.Disease,
		R0:             cfg.R0,
		Coverage:       cfg.Coverage,
		CoveragePreset: cfg.CoveragePreset,
		Generations:    cfg.Generations,
	})
	if err != nil {
		return err
	}
	debugf("disease=%q r0=%g coverage=%g generations=%d", params.Disease, params.R0, params.Coverage, params.Generations)

	switch cfg.Command {
	case CommandHerd:
		v, err := scenario.Calculator(params)
		if err != nil {
			return err
		}
		r.calculator(v)
	case CommandSpread:
		v, err := scenario.Spread(params)
		if err != nil {
			return err
		}
		r.spread(v)
	case CommandImpact:
		v, err := scenario.Impact(params)
		if err != nil {
			return err
		}
		r.impact(v)
	case CommandAnimate:
		s := scenario.NewStepper(growth.TreeGenerations)
		for i := 0; i < cfg.Steps; i++ {
			if !s.Next() {
				debugf("animate: ceiling of %d generations reached", s.Max())
				break
			}
		}
		ser, err := s.Series(params.R0)
		if err != nil {
			return err
		}
		r.animate(params, s, ser)
	case CommandTree:
		if cfg.Format != FormatText && cfg.Format != FormatDOT {
			return fmt.Errorf("%w: unknown format %q", ErrUsage, cfg.Format)
		}
		gens := min(params.Generations, transmission.DefaultMaxGenerations)
		if gens < params.Generations {
			debugf("tree: generations %d limited to %d", params.Generations, gens)
		}
		v, err := scenario.Tree(params, scenario.TreeOptions{Generations: gens, MaxNodes: cfg.MaxNodes, Logger: logger})
		if err != nil {
			return err
		}
		if cfg.Format == FormatDOT {
			return transmission.WriteDOT(out, v.Tree)
		}
		r.tree(v)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}

	return r.err
}

// reporter renders views as text, remembering the first write error.
type reporter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, format, args...)
}

// count renders an infection count with thousands separators, no decimals.
func (r *reporter) count(v float64) string {
	return r.p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

func (r *reporter) presets(cat *presets.Catalog) {
	r.printf("Diseases:\n")
	for _, d := range cat.Diseases() {
		r.printf("  %-24s R0 = %g\n", d.Name, d.R0)
	}
	r.printf("Coverage presets:\n")
	for _, c := range cat.Coverages() {
		r.printf("  %-24s %.0f%%\n", c.Name, herd.Percent(c.Coverage))
	}
}

func (r *reporter) calculator(v scenario.CalculatorView) {
	r.printf("%s (R0 = %.1f)\n", v.Disease, v.R0)
	r.printf("Herd immunity threshold: %s\n", v.Metrics.Threshold)
	r.printf("Vaccination coverage:    %.1f%%\n", herd.Percent(v.Coverage))
	r.printf("Effective R (Re):        %.2f\n", v.Metrics.Re)
	switch {
	case !v.Metrics.Threshold.Applicable():
		r.printf("Already below the epidemic threshold: no herd immunity needed.\n")
	case v.Metrics.Controlled:
		r.printf("Outbreak control achieved: infections decline over time.\n")
	default:
		r.printf("Insufficient immunity: %.1f%% more coverage needed.\n", herd.Percent(v.Gap))
	}
}

func (r *reporter) series(s growth.Series) {
	for _, p := range s {
		r.printf("  gen %2d  %s\n", p.Generation, r.count(p.Infected))
	}
}

func (r *reporter) spread(v scenario.SpreadView) {
	r.printf("%s: exponential spread at R0 = %.1f\n", v.Disease, v.R0)
	r.series(v.Series)
	r.printf("Infected in generation %d: %s\n", v.Series.Len()-1, r.count(v.Series.Final()))
}

func (r *reporter) impact(v scenario.ImpactView) {
	gens := v.Unvaccinated.Len() - 1
	r.printf("%s: vaccine impact at %.0f%% coverage\n", v.Disease, herd.Percent(v.Coverage))
	r.printf("No vaccination (R0 = %.2f):\n", v.R0)
	r.series(v.Unvaccinated)
	r.printf("With vaccination (Re = %.2f):\n", v.Metrics.Re)
	r.series(v.Vaccinated)
	r.printf("Generation %d: %s vs %s infections\n", gens, r.count(v.Unvaccinated.Final()), r.count(v.Vaccinated.Final()))
	r.printf("Cumulative: %s -> %s (%.1f%% fewer)\n",
		r.count(v.Unvaccinated.Cumulative()), r.count(v.Vaccinated.Cumulative()), herd.Percent(v.Reduction))
	r.printf("Herd immunity threshold: %s\n", v.Metrics.Threshold)
}

func (r *reporter) animate(p scenario.Params, s *scenario.Stepper, ser growth.Series) {
	r.printf("%s: showing up to generation %d of %d\n", p.Disease, s.Current(), s.Max())
	r.series(ser)
	r.printf("Infected so far: %s\n", r.count(ser.Final()))
}

func (r *reporter) tree(v scenario.TreeView) {
	r.printf("%s: transmission tree, Re = %.2f", v.Disease, v.Re)
	if v.Capped {
		r.printf(" (branching capped at %.0f)", v.Branching)
	}
	r.printf("\n")
	for g, n := range v.Tree.GenerationCounts() {
		r.printf("  gen %d  %s cases\n", g, r.count(float64(n)))
	}
	r.printf("Total cases: %s\n", r.count(float64(v.Tree.Len())))
}
