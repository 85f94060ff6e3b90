package matchengine

import (
	"testing"

	"github.com/jzombie/ticker-sniffer-go/internal/registry"
)

func TestCollectParityStatesFindsEveryCoincidence(t *testing.T) {
	const (
		berkshire registry.TokenId = 1
		hathaway  registry.TokenId = 2
		ticker    registry.TokenId = 99
	)

	candidates := CandidateSequences{
		ticker: {
			{SequenceIndex: 0, TokenIDs: []registry.TokenId{berkshire, hathaway}},
		},
	}

	query := []registry.TokenId{berkshire, hathaway}

	states := CollectParityStates(query, candidates)
	if len(states) != 2 {
		t.Fatalf("want 2 parity states, got %d", len(states))
	}
	if states[0].QueryTokenIdx != 0 || states[0].CompanySequenceTokenIdx != 0 {
		t.Errorf("unexpected first state: %+v", states[0])
	}
	if states[1].QueryTokenIdx != 1 || states[1].CompanySequenceTokenIdx != 1 {
		t.Errorf("unexpected second state: %+v", states[1])
	}
}

func TestCollectParityStatesSortOrder(t *testing.T) {
	const (
		tickA registry.TokenId = 1
		tickB registry.TokenId = 2
		tok   registry.TokenId = 5
	)

	candidates := CandidateSequences{
		tickB: {{SequenceIndex: 1, TokenIDs: []registry.TokenId{tok}}},
		tickA: {
			{SequenceIndex: 1, TokenIDs: []registry.TokenId{tok}},
			{SequenceIndex: 0, TokenIDs: []registry.TokenId{tok}},
		},
	}
	query := []registry.TokenId{tok, tok}

	states := CollectParityStates(query, candidates)

	for i := 1; i < len(states); i++ {
		a, b := states[i-1], states[i]
		if a.TickerSymbolTokenID > b.TickerSymbolTokenID {
			t.Fatalf("ticker ids not ascending at %d: %+v then %+v", i, a, b)
		}
		if a.TickerSymbolTokenID == b.TickerSymbolTokenID && a.CompanySequenceIdx > b.CompanySequenceIdx {
			t.Fatalf("sequence idx not ascending within ticker at %d: %+v then %+v", i, a, b)
		}
	}
}

func TestCollectParityStatesNoMatchYieldsEmpty(t *testing.T) {
	candidates := CandidateSequences{
		1: {{SequenceIndex: 0, TokenIDs: []registry.TokenId{10}}},
	}
	states := CollectParityStates([]registry.TokenId{20, 30}, candidates)
	if len(states) != 0 {
		t.Fatalf("want 0 states, got %d", len(states))
	}
}
