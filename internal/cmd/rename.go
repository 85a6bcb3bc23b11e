package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"rngrename/internal/charset"
	"rngrename/internal/config"
	"rngrename/internal/errmode"
	"rngrename/internal/finalise"
	"rngrename/internal/journal"
	"rngrename/internal/logging"
	"rngrename/internal/namegen"
	"rngrename/internal/pathset"
	"rngrename/internal/prompt"
	"rngrename/internal/rename"
	"rngrename/internal/termstyle"
)

// renameOpts holds the root command's flags.
type renameOpts struct {
	confirm      rename.ConfirmMode
	confirmBatch int
	dryRun       bool
	extMode      finalise.ExtMode
	staticExt    string
	errMode      errmode.Mode
	strategy     namegen.Strategy
	length       int
	prefix       string
	suffix       string
	charSet      charset.Selection
	customChars  string
	casing       charset.Casing
	verbose      int
	journal      string
	color        string
	configPath   string
	seed         uint64
}

func defaultRenameOpts(cfg *config.Config) *renameOpts {
	return &renameOpts{
		confirm:      rename.ConfirmMode(cfg.Confirm),
		confirmBatch: cfg.ConfirmBatch,
		extMode:      finalise.ExtMode(cfg.ExtMode),
		errMode:      errmode.Mode(cfg.ErrorHandling),
		length:       cfg.Length,
		charSet:      charset.Selection(cfg.CharSet),
		color:        cfg.Color,
	}
}

func (o *renameOpts) register(f *pflag.FlagSet) {
	f.VarP(&o.confirm, "confirm", "c", "Confirm before rename: none, batch or each")
	f.IntVar(&o.confirmBatch, "confirm-batch", o.confirmBatch, "Files to confirm per batch with --confirm=batch; 0 = unlimited")
	f.BoolVarP(&o.dryRun, "dry-run", "d", false, "Preview the renames without touching any file")
	f.VarP(&o.extMode, "ext-mode", "x", "Extension of the new name: keep_all, keep_last, static or discard")
	f.StringVar(&o.staticExt, "static-ext", "", "Extension to use with --ext-mode=static, without the leading dot")
	f.VarP(&o.errMode, "error-handling-mode", "e", "On error: ignore, warn (prompt) or halt")
	f.Var(&o.strategy, "force-generation-strategy", "Force a name generation strategy: on_demand or match")
	f.IntVarP(&o.length, "length", "l", o.length, "Number of random characters in each name")
	f.StringVar(&o.prefix, "prefix", "", "Static prefix for each name")
	f.StringVar(&o.suffix, "suffix", "", "Static suffix for each name, before the extension")
	f.VarP(&o.charSet, "char-set", "s", "Random characters: letters, numbers, alpha_numeric, base16, base64 or custom")
	f.StringVar(&o.customChars, "custom-chars", "", "Characters to use with --char-set=custom")
	f.Var(&o.casing, "case", "Character case where supported: upper, lower or mixed")
	f.CountVarP(&o.verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	f.StringVar(&o.journal, "journal", "", "Append a JSONL record of the run to this file")
	f.StringVar(&o.color, "color", o.color, "Colorize output: auto, always or never")
	f.StringVar(&o.configPath, "config", "", "Config file (default $RNG_RENAME_CONFIG or the user config dir)")
	f.Uint64Var(&o.seed, "seed", 0, "Seed the random number generator for reproducible names")
	_ = f.MarkHidden("force-generation-strategy")
	_ = f.MarkHidden("seed")
}

// applyConfig fills every flag the user did not set from cfg.
func (o *renameOpts) applyConfig(f *pflag.FlagSet, cfg *config.Config) error {
	values := []struct {
		flag  string
		dst   pflag.Value
		value string
	}{
		{"confirm", &o.confirm, cfg.Confirm},
		{"ext-mode", &o.extMode, cfg.ExtMode},
		{"error-handling-mode", &o.errMode, cfg.ErrorHandling},
		{"char-set", &o.charSet, cfg.CharSet},
		{"case", &o.casing, cfg.Case},
	}
	for _, v := range values {
		if f.Changed(v.flag) || v.value == "" {
			continue
		}
		if err := v.dst.Set(v.value); err != nil {
			return fmt.Errorf("config %s: %w", v.flag, err)
		}
	}

	strs := []struct {
		flag  string
		dst   *string
		value string
	}{
		{"static-ext", &o.staticExt, cfg.StaticExt},
		{"prefix", &o.prefix, cfg.Prefix},
		{"suffix", &o.suffix, cfg.Suffix},
		{"custom-chars", &o.customChars, cfg.CustomChars},
		{"journal", &o.journal, cfg.Journal},
		{"color", &o.color, cfg.Color},
	}
	for _, s := range strs {
		if !f.Changed(s.flag) {
			*s.dst = s.value
		}
	}

	if !f.Changed("length") {
		o.length = cfg.Length
	}
	if !f.Changed("confirm-batch") {
		o.confirmBatch = cfg.ConfirmBatch
	}
	return nil
}

func (o *renameOpts) validate() error {
	if o.length < 0 {
		return fmt.Errorf("--length must not be negative, got %d", o.length)
	}
	if o.confirmBatch < 0 {
		return fmt.Errorf("--confirm-batch must not be negative, got %d", o.confirmBatch)
	}
	if o.extMode == finalise.Static && o.staticExt == "" {
		return fmt.Errorf("--static-ext is required when --ext-mode=static")
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runRename(cmd *cobra.Command, files []string, opts *renameOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := opts.applyConfig(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if err := termstyle.Configure(opts.color); err != nil {
		return err
	}

	log := logging.New(logging.WithVerbosity(opts.verbose), logging.WithOutput(cmd.ErrOrStderr()))
	log.Debug("parsed options",
		"files", len(files),
		"confirm", opts.confirm.String(),
		"confirm_batch", opts.confirmBatch,
		"dry_run", opts.dryRun,
		"ext_mode", opts.extMode.String(),
		"error_handling", opts.errMode.String(),
		"length", opts.length,
		"char_set", opts.charSet.String(),
		"case", opts.casing.String(),
	)

	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()
	if needsPrompt(opts) && !isTerminal(in) {
		log.Debug("stdin is not a terminal; prompts will read answers from it line by line")
	}

	if opts.dryRun {
		fmt.Fprintf(out, "You are in %s. Your files will not be touched.\n", termstyle.Red("DRY RUN MODE"))
	}

	lp := prompt.NewLine(in, out)
	handler := errmode.Handler{Mode: opts.errMode, Prompt: lp, Log: log}

	unique, err := pathset.Dedup(files, handler)
	if err != nil {
		return err
	}

	alphabet, err := charset.Resolve(opts.charSet, opts.customChars, opts.casing)
	if err != nil {
		return err
	}
	log.Debug("character set resolved", "set", alphabet.String(), "size", alphabet.Len())

	gen := newGenerator(cfg, opts, cmd.Flags().Changed("seed"), log)
	pairs, err := gen.Generate(unique, alphabet, opts.length, opts.strategy)
	if err != nil {
		return err
	}

	final, err := finalise.Finalise(pairs, finalise.Options{
		Prefix:    opts.prefix,
		Suffix:    opts.suffix,
		ExtMode:   opts.extMode,
		StaticExt: opts.staticExt,
	}, handler)
	if err != nil {
		return err
	}
	log.Debug("extension mode applied", "mode", opts.extMode.String())

	j, err := journal.Open(opts.journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	space, ok := namegen.NamingSpace(alphabet.Len(), opts.length)
	j.RunStarted(journal.RunInfo{
		Files:    len(final),
		Strategy: namegen.SelectStrategy(len(unique), space, ok, opts.strategy, gen.Threshold()).String(),
		CharSet:  alphabet.String(),
		Length:   opts.length,
		DryRun:   opts.dryRun,
	})

	n, err := rename.Apply(final, rename.Options{
		Confirm:   opts.confirm,
		BatchSize: opts.confirmBatch,
		DryRun:    opts.dryRun,
		Errors:    handler,
		Prompt:    lp,
		Out:       out,
		Journal:   j,
		Log:       log,
	})
	j.RunFinished(n, err)
	if err != nil {
		return err
	}

	marker := ""
	if opts.dryRun {
		marker = " (" + termstyle.DryRun() + ")"
	}
	fmt.Fprintf(out, "Renamed %s files%s. Done.\n", termstyle.Green(strconv.Itoa(n)), marker)
	return nil
}

func newGenerator(cfg *config.Config, opts *renameOpts, seeded bool, log *slog.Logger) *namegen.Generator {
	genOpts := []namegen.Option{
		namegen.WithLimits(cfg.Engine.Limits()),
		namegen.WithThreshold(cfg.Engine.RatioThreshold),
		namegen.WithLogger(log),
	}
	if seeded {
		genOpts = append(genOpts, namegen.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	}
	return namegen.New(genOpts...)
}

func needsPrompt(opts *renameOpts) bool {
	return opts.confirm == rename.Batch || opts.confirm == rename.Each || opts.errMode == errmode.Warn
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
