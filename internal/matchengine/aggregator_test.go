package matchengine

import (
	"testing"

	"github.com/jzombie/ticker-sniffer-go/internal/registry"
)

func TestCalcExactMatchRatioEmptyPool(t *testing.T) {
	if CalcExactMatchRatio(nil) != 1.0 {
		t.Fatalf("want 1.0 for empty pool")
	}
}

func TestCalcExactMatchRatioMixedPool(t *testing.T) {
	ranges := []*RangeState{
		{IsMatchedOnTickerSymbol: true},
		{IsMatchedOnTickerSymbol: false},
		{IsMatchedOnTickerSymbol: false},
		{IsMatchedOnTickerSymbol: false},
	}
	if got := CalcExactMatchRatio(ranges); got != 0.25 {
		t.Fatalf("want 0.25, got %v", got)
	}
}

func TestCountDocumentNameFrequenciesCountsDistinctVariants(t *testing.T) {
	ranges := []*RangeState{
		{TickerSymbol: "AAPL", QueryTokenIndices: []int{0}},
		{TickerSymbol: "AAPL", QueryTokenIndices: []int{0}}, // same variant, same object semantics
		{TickerSymbol: "AAPL", QueryTokenIndices: []int{5, 6}},
	}
	freqs := CountDocumentNameFrequencies(ranges)
	if freqs["AAPL"] != 2 {
		t.Fatalf("want 2 distinct variants, got %d", freqs["AAPL"])
	}
}

func TestCountQuerySymbolFrequenciesIgnoresUnresolvedIDs(t *testing.T) {
	tickerOf := func(id registry.TokenId) (string, bool) {
		if id == 1 {
			return "AAPL", true
		}
		return "", false
	}
	freqs := CountQuerySymbolFrequencies([]registry.TokenId{1, 1, 2}, tickerOf)
	if freqs["AAPL"] != 2 {
		t.Fatalf("want AAPL:2, got %v", freqs)
	}
	if len(freqs) != 1 {
		t.Fatalf("want unresolved id dropped, got %v", freqs)
	}
}

func TestReconcileDiscardsSymbolPathBelowRatioThreshold(t *testing.T) {
	documentFreqs := FrequencyMap{}
	querySymbolFreqs := FrequencyMap{"AAPL": 1}
	topRanges := []*RangeState{{IsMatchedOnTickerSymbol: false}, {IsMatchedOnTickerSymbol: false}}

	got := Reconcile(documentFreqs, querySymbolFreqs, topRanges, 0.0, 0.5, func(string) (registry.TokenId, bool) { return 0, false })

	if len(got) != 0 {
		t.Fatalf("want symbol path discarded below threshold, got %v", got)
	}
}

func TestReconcileKeepsSymbolPathAtThreshold(t *testing.T) {
	documentFreqs := FrequencyMap{}
	querySymbolFreqs := FrequencyMap{"AAPL": 1}

	got := Reconcile(documentFreqs, querySymbolFreqs, nil, 0.5, 0.5, func(string) (registry.TokenId, bool) { return 0, false })

	if got["AAPL"] != 1 {
		t.Fatalf("want AAPL:1 kept at exactly the threshold, got %v", got)
	}
}

func TestReconcileDropsSymbolTickerAlreadyInDocumentSet(t *testing.T) {
	documentFreqs := FrequencyMap{"AAPL": 2}
	querySymbolFreqs := FrequencyMap{"AAPL": 1}

	got := Reconcile(documentFreqs, querySymbolFreqs, nil, 1.0, 0.5, func(string) (registry.TokenId, bool) { return 0, false })

	if got["AAPL"] != 2 {
		t.Fatalf("want document count preserved with symbol duplicate dropped, got %v", got)
	}
}

func TestReconcileDecrementsOverlappingTopRangeMembership(t *testing.T) {
	const aaplID registry.TokenId = 7
	documentFreqs := FrequencyMap{}
	querySymbolFreqs := FrequencyMap{"AAPL": 2}
	topRanges := []*RangeState{
		{QueryTextDocTokenIDs: []registry.TokenId{aaplID}},
	}
	tickerTokenID := func(ticker string) (registry.TokenId, bool) {
		if ticker == "AAPL" {
			return aaplID, true
		}
		return 0, false
	}

	got := Reconcile(documentFreqs, querySymbolFreqs, topRanges, 1.0, 0.5, tickerTokenID)

	if got["AAPL"] != 1 {
		t.Fatalf("want AAPL:1 after one decrement, got %v", got)
	}
}

func TestReconcileSaturatesAtZero(t *testing.T) {
	const aaplID registry.TokenId = 7
	querySymbolFreqs := FrequencyMap{"AAPL": 1}
	topRanges := []*RangeState{
		{QueryTextDocTokenIDs: []registry.TokenId{aaplID}},
		{QueryTextDocTokenIDs: []registry.TokenId{aaplID}},
	}
	tickerTokenID := func(string) (registry.TokenId, bool) { return aaplID, true }

	got := Reconcile(FrequencyMap{}, querySymbolFreqs, topRanges, 1.0, 0.5, tickerTokenID)

	if _, ok := got["AAPL"]; ok {
		t.Fatalf("want AAPL dropped once its adjusted count saturates at zero, got %v", got)
	}
}
