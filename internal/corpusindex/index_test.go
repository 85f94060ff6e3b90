package corpusindex

import "testing"

func assertEqual[T comparable](t *testing.T, want, got T) {
	t.Helper()
	if want != got {
		t.Errorf("want %v, got %v", want, got)
	}
}

// sampleList mirrors the shipped default corpus convention: a short common
// name as the primary sequence, legal/longer forms and the bare symbol
// itself folded in as alternate names.
func sampleList() CompanySymbolList {
	return CompanySymbolList{
		{TickerSymbol: "AAPL", CompanyName: "Apple", AlternateNames: []string{"Apple Inc.", "AAPL"}},
		{TickerSymbol: "MSFT", CompanyName: "Microsoft Corporation", AlternateNames: []string{"MSFT"}},
		{TickerSymbol: "AMZN", CompanyName: "Amazon", AlternateNames: []string{"Amazon.com Inc.", "AMZN"}},
		{TickerSymbol: "BRK.A", CompanyName: "Berkshire Hathaway", AlternateNames: []string{"Berkshire Hathaway Inc", "BRK.A"}},
		{TickerSymbol: "BRK.B", AlternateNames: []string{"BRK.B"}},
	}
}

func TestBuildRegistersTickerSymbolMaps(t *testing.T) {
	idx := Build(sampleList())

	id, ok := idx.TokenIDByTickerSymbol("AAPL")
	assertEqual(t, true, ok)

	sym, ok := idx.TickerSymbolByTokenID(id)
	assertEqual(t, true, ok)
	assertEqual(t, "AAPL", sym)
}

func TestBuildCreatesCompanySequences(t *testing.T) {
	idx := Build(sampleList())

	id, _ := idx.TokenIDByTickerSymbol("AAPL")
	seqs := idx.CompanySequences(id)
	assertEqual(t, 3, len(seqs)) // "Apple", "Apple Inc.", "AAPL"
	assertEqual(t, 1, len(seqs[0])) // APPLE
	assertEqual(t, 2, len(seqs[1])) // APPLE, INC
}

func TestBuildDottedSymbolUsesFirstTokenAsCanonicalID(t *testing.T) {
	idx := Build(sampleList())

	id, ok := idx.TokenIDByTickerSymbol("BRK.A")
	assertEqual(t, true, ok)

	maxLen, ok := idx.CompanySequenceMaxLength(id, 0)
	assertEqual(t, true, ok)
	assertEqual(t, 2, maxLen) // BERKSHIRE, HATHAWAY
}

func TestReverseTokenMapCoversEveryCompanyToken(t *testing.T) {
	idx := Build(sampleList())

	appleId, _ := idx.TokenIDByTickerSymbol("AAPL")
	tok, ok := idx.Registry.GetId("APPLE")
	assertEqual(t, true, ok)

	owners := idx.SequencesForToken(tok)
	found := false
	for _, owner := range owners {
		if owner == appleId {
			found = true
		}
	}
	assertEqual(t, true, found)
}

func TestCompanySequenceMaxLengthUnknownTickerReturnsFalse(t *testing.T) {
	idx := Build(sampleList())
	_, ok := idx.CompanySequenceMaxLength(9999, 0)
	assertEqual(t, false, ok)
}

func TestEmptyCompanyNameYieldsNoSequence(t *testing.T) {
	idx := Build(CompanySymbolList{{TickerSymbol: "X"}})
	id, _ := idx.TokenIDByTickerSymbol("X")
	assertEqual(t, 0, len(idx.CompanySequences(id)))
}

// TestLowercaseOnlyWordsInNameAreUppercasedBeforeTokenizing guards against a
// regression where a mixed-case company name like "urban-gro, Inc." loses
// its lowercase-only words entirely, since the document tokenizer drops any
// word with no uppercase letter.
func TestLowercaseOnlyWordsInNameAreUppercasedBeforeTokenizing(t *testing.T) {
	idx := Build(CompanySymbolList{
		{TickerSymbol: "URGN", CompanyName: "urban-gro, Inc.", AlternateNames: []string{"URGN"}},
	})

	id, ok := idx.TokenIDByTickerSymbol("URGN")
	assertEqual(t, true, ok)

	seqs := idx.CompanySequences(id)
	assertEqual(t, 2, len(seqs))    // "urban-gro, Inc.", "URGN"
	assertEqual(t, 2, len(seqs[0])) // URBANGRO, INC

	_, ok = idx.Registry.GetId("URBANGRO")
	assertEqual(t, true, ok)
}
