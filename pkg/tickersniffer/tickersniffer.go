// Package tickersniffer is the public entry point for extracting stock
// ticker symbols and company-name mentions from free-form text.
package tickersniffer

import (
	"context"
	"os"
	"sync"

	"github.com/jzombie/ticker-sniffer-go/assets"
	"github.com/jzombie/ticker-sniffer-go/internal/corpusindex"
	"github.com/jzombie/ticker-sniffer-go/internal/matchengine"
	"github.com/jzombie/ticker-sniffer-go/internal/registry"
)

// Config tunes the matching engine's reconciliation thresholds.
type Config = matchengine.Config

// DefaultConfig returns the engine's default thresholds (0.50 exact-match
// ratio, 0.60 company-token coverage).
func DefaultConfig() Config { return matchengine.DefaultConfig() }

// FrequencyMap maps a ticker symbol to how many times it was mentioned.
type FrequencyMap = matchengine.FrequencyMap

// CompanySymbolList is a reference corpus: one entry per ticker, its
// canonical company name, and any alternate names it may be mentioned
// under. See internal/corpusindex for the CSV shape this is built from.
type CompanySymbolList = corpusindex.CompanySymbolList

// CompanyEntry is a single row of a CompanySymbolList.
type CompanyEntry = corpusindex.CompanyEntry

// Engine runs extraction against a fixed corpus. It is safe for concurrent
// use by multiple goroutines.
type Engine struct {
	index *corpusindex.Index
	inner *matchengine.Engine
}

// NewEngine builds an Engine over a caller-supplied corpus.
func NewEngine(list CompanySymbolList, cfg Config) *Engine {
	idx := corpusindex.Build(list)
	return &Engine{index: idx, inner: matchengine.New(idx, cfg)}
}

// NewDefaultEngine builds an Engine over the embedded reference corpus.
// The embedded corpus is parsed and indexed once per process and shared
// across every Engine this returns, regardless of cfg.
func NewDefaultEngine(cfg Config) (*Engine, error) {
	idx, err := loadDefaultIndex()
	if err != nil {
		return nil, err
	}
	return &Engine{index: idx, inner: matchengine.New(idx, cfg)}, nil
}

// NewEngineFromCSVFile builds an Engine from a plain (non-gzipped) CSV file
// on disk, for callers overriding the corpus via EngineConfig.CorpusPath.
func NewEngineFromCSVFile(path string, cfg Config) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, err := corpusindex.ParseCSV(f)
	if err != nil {
		return nil, err
	}
	return NewEngine(list, cfg), nil
}

// Extract runs the full pipeline over text and returns a ticker-symbol to
// mention-count mapping. It cannot fail: an empty or unrecognized document
// simply yields an empty map.
func (e *Engine) Extract(text string) FrequencyMap {
	return e.inner.Process(text)
}

// ExtractBatch runs Extract over every text concurrently, bounded to at
// most concurrency goroutines at once (<= 0 picks a sensible default).
func (e *Engine) ExtractBatch(ctx context.Context, texts []string, concurrency int) ([]FrequencyMap, error) {
	return e.inner.ProcessBatch(ctx, texts, concurrency)
}

// TickerSymbolByTokenID resolves a raw corpus token id back to the ticker
// symbol that owns it, if any.
func (e *Engine) TickerSymbolByTokenID(id registry.TokenId) (string, bool) {
	return e.index.TickerSymbolByTokenID(id)
}

// TokenIDByTickerSymbol resolves a ticker symbol to its canonical token id.
func (e *Engine) TokenIDByTickerSymbol(symbol string) (registry.TokenId, bool) {
	return e.index.TokenIDByTickerSymbol(symbol)
}

// defaultIndex is built once on first use of the package-level Extract /
// ExtractWithConfig functions, since most callers never need a custom
// corpus and rebuilding the embedded index on every call would be
// wasteful. The built Index is read-only and safe to share across Engines
// running with different Configs.
var (
	defaultIndexOnce sync.Once
	defaultIndex     *corpusindex.Index
	defaultIndexErr  error
)

func loadDefaultIndex() (*corpusindex.Index, error) {
	defaultIndexOnce.Do(func() {
		list, err := corpusindex.ParseGzipCSV(assets.DefaultCompanySymbolListGz())
		if err != nil {
			defaultIndexErr = err
			return
		}
		defaultIndex = corpusindex.Build(list)
	})
	return defaultIndex, defaultIndexErr
}

// Extract runs extraction over text against the embedded default corpus
// using DefaultConfig.
func Extract(text string) (FrequencyMap, error) {
	return ExtractWithConfig(DefaultConfig(), text)
}

// ExtractWithConfig runs extraction over text against the embedded default
// corpus using cfg.
func ExtractWithConfig(cfg Config, text string) (FrequencyMap, error) {
	idx, err := loadDefaultIndex()
	if err != nil {
		return nil, err
	}
	eng := matchengine.New(idx, cfg)
	return eng.Process(text), nil
}
