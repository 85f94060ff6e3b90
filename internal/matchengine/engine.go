package matchengine

import (
	"github.com/jzombie/ticker-sniffer-go/internal/corpusindex"
	"github.com/jzombie/ticker-sniffer-go/internal/registry"
)

// DefaultThresholdRatioExactMatches is the minimum share of top ranges that
// must be pure ticker-symbol matches before literal symbol mentions are
// trusted at all.
const DefaultThresholdRatioExactMatches = 0.50

// DefaultThresholdMinCompanyTokenCoverage is the minimum fraction of a
// company sequence a range must cover to survive selection.
const DefaultThresholdMinCompanyTokenCoverage = 0.60

// Config tunes the two reconciliation thresholds. The zero value is not
// valid — use DefaultConfig or explicitly set both fields.
type Config struct {
	ThresholdRatioExactMatches       float64
	ThresholdMinCompanyTokenCoverage float64
}

// DefaultConfig returns the engine's default thresholds.
func DefaultConfig() Config {
	return Config{
		ThresholdRatioExactMatches:       DefaultThresholdRatioExactMatches,
		ThresholdMinCompanyTokenCoverage: DefaultThresholdMinCompanyTokenCoverage,
	}
}

// Engine runs the matching pipeline against a fixed, read-only corpus
// index. An Engine is safe for concurrent use by multiple goroutines, each
// call to Process constructs and discards its own per-query scratch state.
type Engine struct {
	index  *corpusindex.Index
	config Config
}

// New builds an Engine over idx using the given Config.
func New(idx *corpusindex.Index, config Config) *Engine {
	return &Engine{index: idx, config: config}
}

// Process runs the full pipeline over one document and returns a
// ticker-symbol to frequency mapping. It cannot fail: unknown tokens are
// silently dropped by projection, and no match is a valid, empty result.
func (e *Engine) Process(text string) FrequencyMap {
	symbolTokens := e.index.SymbolTokenizer().Tokenize(text)
	docTokens := e.index.TextDocTokenizer().Tokenize(text)

	queryDocTokenIDs := e.index.Registry.GetFilteredIds(docTokens)
	querySymbolTokenIDs := filterToTickerSymbolTokens(e.index, e.index.Registry.GetFilteredIds(symbolTokens))

	candidates := e.buildCandidateSequences(queryDocTokenIDs)

	parityStates := CollectParityStates(queryDocTokenIDs, candidates)
	ranges := CollectRangeStates(candidates, parityStates, e.index.CompanySequenceMaxLength, e.index.TickerSymbolByTokenID)

	AssignRangeScores(len(queryDocTokenIDs), ranges)

	ranges = filterByCoverage(ranges, e.config.ThresholdMinCompanyTokenCoverage)

	topRanges := CollectTopRangeStates(len(queryDocTokenIDs), ranges)

	ratioExact := CalcExactMatchRatio(topRanges)

	documentFreqs := CountDocumentNameFrequencies(topRanges)
	querySymbolFreqs := CountQuerySymbolFrequencies(querySymbolTokenIDs, e.index.TickerSymbolByTokenID)

	return Reconcile(documentFreqs, querySymbolFreqs, topRanges, ratioExact, e.config.ThresholdRatioExactMatches, e.index.TokenIDByTickerSymbol)
}

// filterToTickerSymbolTokens keeps only ids that are a ticker's own
// canonical token id — the pre-filtered symbol tokenization may contain
// tokens that merely satisfy the symbol tokenizer's shape requirements
// without ever being registered as a real ticker.
func filterToTickerSymbolTokens(idx *corpusindex.Index, ids []registry.TokenId) []registry.TokenId {
	out := make([]registry.TokenId, 0, len(ids))
	for _, id := range ids {
		if idx.IsTickerSymbolTokenID(id) {
			out = append(out, id)
		}
	}
	return out
}

// buildCandidateSequences implements the first-token anchoring: for every
// query token id, look up the tickers whose company sequences contain it,
// then keep only the sequences whose own first token matches that query
// token id.
func (e *Engine) buildCandidateSequences(queryDocTokenIDs []registry.TokenId) CandidateSequences {
	candidates := make(CandidateSequences)

	for _, queryTokenID := range queryDocTokenIDs {
		for _, tickerID := range e.index.SequencesForToken(queryTokenID) {
			for seqIdx, seq := range e.index.CompanySequences(tickerID) {
				if len(seq) == 0 || seq[0] != queryTokenID {
					continue
				}
				if candidateAlreadyPresent(candidates[tickerID], seqIdx) {
					continue
				}
				candidates[tickerID] = append(candidates[tickerID], CandidateSequence{
					SequenceIndex: seqIdx,
					TokenIDs:      seq,
				})
			}
		}
	}

	return candidates
}

func candidateAlreadyPresent(seqs []CandidateSequence, seqIdx int) bool {
	for _, s := range seqs {
		if s.SequenceIndex == seqIdx {
			return true
		}
	}
	return false
}

func filterByCoverage(ranges []*RangeState, threshold float64) []*RangeState {
	out := make([]*RangeState, 0, len(ranges))
	for _, r := range ranges {
		if r.CompanyTokenCoverage >= threshold {
			out = append(out, r)
		}
	}
	return out
}
