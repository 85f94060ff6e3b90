// Package corpusindex builds the read-only, per-ticker data structures the
// matching engine runs against: a token registry shared across tickers, the
// forward and reverse ticker↔token-id maps, the per-ticker company token
// sequences, and the token reverse index (every token of every sequence)
// that the engine filters by first token to anchor candidate sequences
// during matching.
package corpusindex

import (
	"strings"

	"github.com/jzombie/ticker-sniffer-go/internal/registry"
	"github.com/jzombie/ticker-sniffer-go/internal/tokenizer"
)

// CompanySequenceIndex is the position of a name variant within one
// ticker's list of company token sequences, in insertion order.
type CompanySequenceIndex = int

// Index holds the corpus's read-only token and sequence data. It is built
// once from a CompanySymbolList and is safe for concurrent reads by
// reference; it carries no per-query mutable state.
type Index struct {
	Registry *registry.Registry

	tickerSymbolTokenizer *tokenizer.Tokenizer
	textDocTokenizer      *tokenizer.Tokenizer

	tickerSymbolMap        map[TickerSymbol]registry.TokenId
	reverseTickerSymbolMap map[registry.TokenId]TickerSymbol
	companyTokenSequences  map[registry.TokenId][][]registry.TokenId
	companyReverseTokenMap map[registry.TokenId][]registry.TokenId
}

// Build constructs an Index from a reference corpus. Construction is total
// over well-formed input: malformed CSV is rejected upstream by the reader,
// not here.
func Build(list CompanySymbolList) *Index {
	idx := &Index{
		Registry:               registry.New(),
		tickerSymbolTokenizer:  tokenizer.SymbolTokenizer(),
		textDocTokenizer:       tokenizer.DocumentTokenizer(),
		tickerSymbolMap:        make(map[TickerSymbol]registry.TokenId, len(list)),
		reverseTickerSymbolMap: make(map[registry.TokenId]TickerSymbol, len(list)),
		companyTokenSequences:  make(map[registry.TokenId][][]registry.TokenId, len(list)),
		companyReverseTokenMap: make(map[registry.TokenId][]registry.TokenId),
	}
	idx.ingest(list)
	return idx
}

func (idx *Index) ingest(list CompanySymbolList) {
	for _, entry := range list {
		symbolTokens := idx.tickerSymbolTokenizer.Tokenize(entry.TickerSymbol)
		if len(symbolTokens) == 0 {
			continue
		}

		for _, tok := range symbolTokens {
			tokenId := idx.Registry.Upsert(tok)
			idx.reverseTickerSymbolMap[tokenId] = entry.TickerSymbol
		}

		// The first token of the symbol tokenization is the ticker's
		// canonical id and the forward map points at it; later tokens (if
		// any) only register reverse-map alias entries above.
		tickerSymbolTokenId, _ := idx.Registry.GetId(symbolTokens[0])
		idx.tickerSymbolMap[entry.TickerSymbol] = tickerSymbolTokenId

		var sequences [][]registry.TokenId
		if entry.CompanyName != "" {
			sequences = append(sequences, idx.ingestNameVariant(entry.CompanyName, tickerSymbolTokenId))
		}
		for _, alt := range entry.AlternateNames {
			sequences = append(sequences, idx.ingestNameVariant(alt, tickerSymbolTokenId))
		}

		if len(sequences) > 0 {
			idx.companyTokenSequences[tickerSymbolTokenId] = append(
				idx.companyTokenSequences[tickerSymbolTokenId], sequences...,
			)
		}
	}
}

// ingestNameVariant tokenizes a company name or alternate name. The name is
// uppercased first since the document tokenizer's requireCapsOrNumeric
// filter drops lowercase-only words otherwise, losing real-world mixed-case
// names such as "urban-gro, Inc." entirely.
func (idx *Index) ingestNameVariant(name string, tickerSymbolTokenId registry.TokenId) []registry.TokenId {
	tokens := idx.textDocTokenizer.Tokenize(strings.ToUpper(name))
	ids := idx.Registry.UpsertAll(tokens)
	for _, id := range ids {
		idx.companyReverseTokenMap[id] = append(idx.companyReverseTokenMap[id], tickerSymbolTokenId)
	}
	return ids
}

// TickerSymbolByTokenID resolves a ticker's canonical token id back to its
// ticker symbol string.
func (idx *Index) TickerSymbolByTokenID(id registry.TokenId) (TickerSymbol, bool) {
	sym, ok := idx.reverseTickerSymbolMap[id]
	return sym, ok
}

// TokenIDByTickerSymbol resolves a ticker symbol to its canonical token id.
func (idx *Index) TokenIDByTickerSymbol(sym TickerSymbol) (registry.TokenId, bool) {
	id, ok := idx.tickerSymbolMap[sym]
	return id, ok
}

// IsTickerSymbolTokenID reports whether id is the canonical token id of
// some ticker in the corpus (i.e. it owns at least a symbol-map entry).
func (idx *Index) IsTickerSymbolTokenID(id registry.TokenId) bool {
	_, ok := idx.reverseTickerSymbolMap[id]
	return ok
}

// SequencesForToken returns the ticker token ids whose company token
// sequences contain id as a member (not necessarily as the first token).
// Duplicates are permitted, matching the reference reverse index.
func (idx *Index) SequencesForToken(id registry.TokenId) []registry.TokenId {
	return idx.companyReverseTokenMap[id]
}

// CompanySequences returns every token sequence owned by a ticker's
// canonical token id, in insertion order.
func (idx *Index) CompanySequences(tickerSymbolTokenId registry.TokenId) [][]registry.TokenId {
	return idx.companyTokenSequences[tickerSymbolTokenId]
}

// CompanySequenceMaxLength returns the length of the seqIdx-th sequence
// owned by a ticker's canonical token id.
func (idx *Index) CompanySequenceMaxLength(tickerSymbolTokenId registry.TokenId, seqIdx CompanySequenceIndex) (int, bool) {
	seqs, ok := idx.companyTokenSequences[tickerSymbolTokenId]
	if !ok || seqIdx < 0 || seqIdx >= len(seqs) {
		return 0, false
	}
	return len(seqs[seqIdx]), true
}

// SymbolTokenizer returns the tokenizer used for ticker-symbol text.
func (idx *Index) SymbolTokenizer() *tokenizer.Tokenizer { return idx.tickerSymbolTokenizer }

// TextDocTokenizer returns the tokenizer used for company-name and query
// body text.
func (idx *Index) TextDocTokenizer() *tokenizer.Tokenizer { return idx.textDocTokenizer }
