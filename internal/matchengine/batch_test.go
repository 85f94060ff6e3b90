package matchengine

import (
	"context"
	"testing"

	"github.com/jzombie/ticker-sniffer-go/internal/corpusindex"
)

func TestProcessBatchMatchesSequentialProcess(t *testing.T) {
	idx := corpusindex.Build(scenarioCorpus())
	e := New(idx, DefaultConfig())

	texts := []string{
		"AAPL and MSFT both rallied today",
		"Amazon's logistics network keeps expanding",
		"",
	}

	got, err := e.ProcessBatch(context.Background(), texts, 2)
	if err != nil {
		t.Fatalf("ProcessBatch error: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("want %d results, got %d", len(texts), len(got))
	}
	for i, text := range texts {
		want := e.Process(text)
		if len(got[i]) != len(want) {
			t.Fatalf("result %d: got %v, want %v", i, got[i], want)
		}
		for ticker, count := range want {
			if got[i][ticker] != count {
				t.Fatalf("result %d ticker %s: got %d, want %d", i, ticker, got[i][ticker], count)
			}
		}
	}
}

func TestProcessBatchDefaultsConcurrencyWhenNonPositive(t *testing.T) {
	idx := corpusindex.Build(scenarioCorpus())
	e := New(idx, DefaultConfig())

	got, err := e.ProcessBatch(context.Background(), []string{"AAPL"}, 0)
	if err != nil {
		t.Fatalf("ProcessBatch error: %v", err)
	}
	if got[0]["AAPL"] != 1 {
		t.Fatalf("want AAPL:1, got %v", got[0])
	}
}

func TestProcessBatchRespectsCancelledContext(t *testing.T) {
	idx := corpusindex.Build(scenarioCorpus())
	e := New(idx, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ProcessBatch(ctx, []string{"AAPL", "MSFT"}, 1)
	if err == nil {
		t.Fatal("want error from cancelled context")
	}
}
