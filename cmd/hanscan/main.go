// hanscan — detect and translate Chinese text embedded in source trees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hanscan/hanscan"
	"github.com/hanscan/hanscan/provider"
	"github.com/hanscan/hanscan/rewrite"
	"github.com/hanscan/hanscan/scanner"
	"github.com/hanscan/hanscan/store"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	flagRemoveComments   bool
	flagRemoveDocstrings bool
	flagCodeOnly         bool
	flagBackup           bool
	flagCache            string
	flagRedis            string
	flagProvider         string
	flagAPIKey           string
	flagModel            string
	flagRPM              int
	flagWorkers          int
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hanscan",
		Short: hanscan.Description,
		Long: `hanscan — detect and translate Chinese text embedded in source trees.

Scans a directory for Chinese (Han) text in comments, docstrings, string
literals, and identifiers, translates the phrases via a built-in dictionary
plus an optional AI provider, and rewrites the files in place. Resolved
translations persist in a JSON mapping file between runs.

Commands:
  scan        List translatable phrases without modifying anything
  translate   Translate Chinese text and rewrite files in place
  clean       Strip comments and docstrings without translating

Providers:
  openai      OpenAI chat completion API (needs --api-key or OPENAI_API_KEY)
  google      Free Google Translate web endpoint (slow, small batches)
  none        Dictionary and cache only (default)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagRemoveComments, "remove-comments", false, "Remove comments instead of translating them")
	pf.BoolVar(&flagRemoveDocstrings, "remove-docstrings", false, "Remove docstrings instead of translating them")
	pf.BoolVar(&flagCodeOnly, "code-only", false, "Skip documentation files (.md, .txt, ...)")
	pf.BoolVar(&flagBackup, "backup", false, "Write .bak copies before rewriting files")
	pf.StringVar(&flagCache, "cache", "", "Path of the JSON translation map (default translation_map.json in the root)")
	pf.StringVar(&flagRedis, "redis", "", "Redis URL to use as the translation map store instead of a file")
	pf.StringVar(&flagProvider, "provider", "none", "Translation provider: openai, google, or none")
	pf.StringVar(&flagAPIKey, "api-key", "", "API key for the openai provider")
	pf.StringVar(&flagModel, "model", "", "Model for the openai provider")
	pf.IntVar(&flagRPM, "rpm", 0, "Provider requests per minute (0 = unlimited)")
	pf.IntVar(&flagWorkers, "workers", 0, "Scan workers (0 = number of CPUs)")

	root.AddCommand(
		newScanCmd(),
		newTranslateCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadConfig merges the project's .hanscan.yml with command-line flags.
// Flags win over the file.
func loadConfig(root string) (hanscan.Config, error) {
	cfg, err := hanscan.LoadConfig(root)
	if err != nil {
		return cfg, err
	}
	if flagRemoveComments {
		cfg.RemoveComments = true
	}
	if flagRemoveDocstrings {
		cfg.RemoveDocstrings = true
	}
	if flagCodeOnly {
		cfg.CodeOnly = true
	}
	if flagBackup {
		cfg.BackupOriginal = true
	}
	if flagCache != "" {
		cfg.CacheFile = flagCache
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	return cfg, nil
}

// buildStore picks the mapping store: Redis when requested, file otherwise.
func buildStore(root string, cfg hanscan.Config) (hanscan.MappingStore, error) {
	if flagRedis != "" {
		rs, err := store.NewRedisStore(store.RedisConfig{URL: flagRedis})
		if err != nil {
			return nil, err
		}
		return rs, nil
	}
	return store.NewFileStore(cfg.CachePath(root)), nil
}

// buildProvider constructs the requested backend wrapped with retries and,
// when --rpm is set, rate limiting. Returns nil for "none".
func buildProvider() (hanscan.Provider, error) {
	var p hanscan.Provider

	switch flagProvider {
	case "", "none":
		return nil, nil
	case "openai":
		key := flagAPIKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("openai provider needs --api-key or OPENAI_API_KEY")
		}
		p = provider.NewOpenAIProvider(provider.OpenAIConfig{APIKey: key, Model: flagModel})
	case "google":
		p = provider.NewGoogleProvider(provider.GoogleConfig{})
	default:
		return nil, fmt.Errorf("unknown provider %q", flagProvider)
	}

	p = hanscan.NewRetryableProvider(p, hanscan.DefaultRetryConfig())
	if flagRPM > 0 {
		p = hanscan.NewRateLimitedProvider(p, hanscan.RateLimitConfig{RequestsPerMinute: flagRPM})
	}
	return p, nil
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// ---------------------------------------------------------------------------
// scan (read-only: list phrases and matched files)
// ---------------------------------------------------------------------------

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root]",
		Short: "List translatable phrases without modifying anything",
		Long: `Walk the tree and report every unique Chinese phrase found in comments,
docstrings, string literals, and identifiers. No files are modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootArg(args))
		},
	}
}

func runScan(root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sc := scanner.New(cfg)
	sc.Warn = logWarning

	res, err := sc.Scan(ctx, root)
	if err != nil {
		return err
	}

	for _, phrase := range res.Phrases {
		fmt.Println(phrase)
	}

	logInfo("%d files scanned, %d with Chinese text, %d failed",
		res.FilesScanned, len(res.MatchedFiles), res.FilesFailed)
	logSuccess("%d unique phrases found", len(res.Phrases))
	return nil
}

// ---------------------------------------------------------------------------
// translate (full cycle: scan, translate, rewrite)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [root]",
		Short: "Translate Chinese text and rewrite files in place",
		Long: `Scan the tree, translate the collected phrases with the dictionary, the
persistent translation map, and the chosen provider, then rewrite every
matched file in place. New translations are saved back to the map.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(rootArg(args))
		},
	}
}

func runTranslate(root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	st, err := buildStore(root, cfg)
	if err != nil {
		return err
	}
	prov, err := buildProvider()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sc := scanner.New(cfg)
	sc.Warn = logWarning

	pipe := hanscan.NewPipeline(cfg,
		hanscan.WithScanner(sc),
		hanscan.WithRewriter(rewrite.New(cfg)),
		hanscan.WithStore(st),
		hanscan.WithProvider(prov),
		hanscan.WithWarnLog(logWarning),
	)

	rep, err := pipe.Run(ctx, root)
	if err != nil {
		return err
	}

	logInfo("%d files scanned, %d with Chinese text, %d failed",
		rep.FilesScanned, rep.FilesMatched, rep.FilesFailed)
	logInfo("%d phrases found, %d new, %d translated, %d from cache",
		rep.PhrasesFound, rep.PhrasesNew, rep.Translated, rep.FromCache)

	stats := store.ComputeStats(st.Load())
	logInfo("translation map: %d entries, %d translated", stats.Total, stats.Translated)

	logSuccess("%d files rewritten", rep.FilesChanged)
	return nil
}

// ---------------------------------------------------------------------------
// clean (strip comments and docstrings, no provider)
// ---------------------------------------------------------------------------

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [root]",
		Short: "Strip comments and docstrings without translating",
		Long: `Rewrite matched files removing comments and docstrings entirely. String
literals are still translated from the dictionary and the persistent map, but
no provider is contacted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(rootArg(args))
		},
	}
}

func runClean(root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	cfg.RemoveComments = true
	cfg.RemoveDocstrings = true

	st, err := buildStore(root, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sc := scanner.New(cfg)
	sc.Warn = logWarning

	pipe := hanscan.NewPipeline(cfg,
		hanscan.WithScanner(sc),
		hanscan.WithRewriter(rewrite.New(cfg)),
		hanscan.WithStore(st),
		hanscan.WithWarnLog(logWarning),
	)

	rep, err := pipe.Run(ctx, root)
	if err != nil {
		return err
	}

	logInfo("%d files scanned, %d with Chinese text", rep.FilesScanned, rep.FilesMatched)
	logSuccess("%d files cleaned", rep.FilesChanged)
	return nil
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", hanscan.Name, hanscan.FullVersion())
			fmt.Printf("  commit:    %s\n", hanscan.GitCommit)
			fmt.Printf("  built:     %s\n", hanscan.BuildDate)
		},
	}
}
