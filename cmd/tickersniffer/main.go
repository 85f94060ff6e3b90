// Command tickersniffer extracts stock ticker mentions from text.
//
// With no subcommand it reads a document from stdin to EOF, extracts, and
// writes "SYMBOL: count" lines to stdout, following the teacher's
// cmd/openseai/main.go cobra structure (persistent flags parsed in
// PersistentPreRunE, subcommands registered in init()).
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/jzombie/ticker-sniffer-go/internal/config"
	"github.com/jzombie/ticker-sniffer-go/internal/feednews"
	"github.com/jzombie/ticker-sniffer-go/internal/httpapi"
	"github.com/jzombie/ticker-sniffer-go/internal/symbolnorm"
	"github.com/jzombie/ticker-sniffer-go/pkg/tickersniffer"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	cfg           *config.Config
	cfgFileLoaded string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tickersniffer",
	Short: "Extract stock ticker mentions from text",
	Long: `tickersniffer reads a document from stdin and reports every ticker
symbol it recognizes, either by literal mention ($AAPL, AAPL) or by the
company's name appearing in the text.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
			cfgFileLoaded = configFile
		} else {
			cfg, err = config.Load()
			cfgFileLoaded = config.ConfigFilePath()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runExtract,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.Flags().Float64("threshold-ratio", 0, "override engine.threshold_ratio_exact_matches")
	rootCmd.Flags().Float64("threshold-coverage", 0, "override engine.threshold_min_company_token_coverage")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(statusCmd)
}

func engineConfigFromFlags(cmd *cobra.Command) tickersniffer.Config {
	engCfg := tickersniffer.Config{
		ThresholdRatioExactMatches:       cfg.Engine.ThresholdRatioExactMatches,
		ThresholdMinCompanyTokenCoverage: cfg.Engine.ThresholdMinCompanyTokenCoverage,
	}
	if v, _ := cmd.Flags().GetFloat64("threshold-ratio"); v > 0 {
		engCfg.ThresholdRatioExactMatches = v
	}
	if v, _ := cmd.Flags().GetFloat64("threshold-coverage"); v > 0 {
		engCfg.ThresholdMinCompanyTokenCoverage = v
	}
	return engCfg
}

func buildEngine(cmd *cobra.Command) (*tickersniffer.Engine, error) {
	engCfg := engineConfigFromFlags(cmd)
	if cfg.Engine.CorpusPath != "" {
		return tickersniffer.NewEngineFromCSVFile(cfg.Engine.CorpusPath, engCfg)
	}
	return tickersniffer.NewDefaultEngine(engCfg)
}

// runExtract implements the root command's stdin/stdout contract.
func runExtract(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(cmd)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	freqs := engine.Extract(string(data))
	printFrequencies(os.Stdout, freqs)
	return nil
}

func printFrequencies(w io.Writer, freqs tickersniffer.FrequencyMap) {
	symbols := make([]string, 0, len(freqs))
	for symbol := range freqs {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(w, "%s: %d\n", symbol, freqs[symbol])
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tickersniffer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP extraction API",
	Long: `Start the HTTP API server exposing:

  POST /v1/extract  — extract tickers from the request body
  GET  /v1/healthz  — liveness
  GET  /v1/stream   — WebSocket, one extraction per text frame`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		host, _ := cmd.Flags().GetString("host")
		if host == "" {
			host = cfg.Server.Host
		}
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}

		if cfgFileLoaded != "" {
			if err := config.WatchConfig(cfgFileLoaded, cfg, func() {
				fmt.Printf("config reloaded from %s\n", cfgFileLoaded)
			}); err != nil {
				fmt.Fprintf(os.Stderr, "config watch disabled: %v\n", err)
			}
		}

		srv := httpapi.NewServer(cfg, engine)
		addr := fmt.Sprintf("%s:%d", host, port)
		fmt.Printf("listening on %s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "server host (default from config)")
	serveCmd.Flags().Int("port", 0, "server port (default from config)")
}

var feedCmd = &cobra.Command{
	Use:   "feed [url...]",
	Short: "Run extraction over one or more RSS/Atom feeds",
	Long:  "Fetch each configured (or given) feed, extract tickers from every article, and print a combined summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		sources := feedSourcesFromArgsOrConfig(args)
		if len(sources) == 0 {
			return fmt.Errorf("no feed sources given: pass a URL or configure feed.sources")
		}

		fetcher := feednews.NewFetcher(
			secondsToDuration(cfg.Feed.CacheTTLSec),
			cfg.Feed.ConcurrentFetches,
			cfg.Feed.UserAgent,
		)

		ctx := context.Background()
		combined := make(tickersniffer.FrequencyMap)
		for _, source := range sources {
			articles, freqs, err := feednews.ExtractFromFeed(ctx, fetcher, engine, source, cfg.Feed.ConcurrentFetches)
			if err != nil {
				fmt.Fprintf(os.Stderr, "feed %s: %v\n", source.Name, err)
				continue
			}
			fmt.Printf("%s: %d articles extracted\n", source.Name, len(articles))
			for ticker, count := range freqs {
				combined[ticker] += count
			}
		}

		fmt.Println()
		fmt.Println("combined:")
		printFrequencies(os.Stdout, combined)
		return nil
	},
}

func feedSourcesFromArgsOrConfig(args []string) []feednews.FeedSource {
	if len(args) > 0 {
		sources := make([]feednews.FeedSource, len(args))
		for i, url := range args {
			sources[i] = feednews.FeedSource{Name: url, URL: url}
		}
		return sources
	}

	sources := make([]feednews.FeedSource, len(cfg.Feed.Sources))
	for i, s := range cfg.Feed.Sources {
		sources[i] = feednews.FeedSource{Name: s.Name, URL: s.URL}
	}
	return sources
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

var lookupCmd = &cobra.Command{
	Use:   "lookup SYMBOL",
	Short: "Resolve a ticker symbol against the corpus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		symbol := symbolnorm.Normalize(args[0])
		id, ok := engine.TokenIDByTickerSymbol(symbol)
		if !ok {
			fmt.Printf("%s: not found in corpus\n", symbol)
			return nil
		}
		fmt.Printf("%s: token id %d\n", symbol, id)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and feed source key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("tickersniffer %s\n", version)
		fmt.Println()
		fmt.Println("configuration:")
		fmt.Printf("  engine corpus:   %s\n", corpusLabel(cfg.Engine.CorpusPath))
		fmt.Printf("  server address:  %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("  feed sources:    %d\n", len(cfg.Feed.Sources))
		fmt.Println()

		fmt.Println("feed source keys:")
		keys := config.CheckFeedSourceKeys(cfg)
		if len(keys) == 0 {
			fmt.Println("  (none configured)")
			return nil
		}
		for _, k := range keys {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.KeySrc, k.Masked)
			}
			fmt.Printf("  %-20s %s\n", k.Source+":", status)
		}
		return nil
	},
}

func corpusLabel(path string) string {
	if path == "" {
		return "embedded default"
	}
	return path
}
