package matchengine

import "github.com/jzombie/ticker-sniffer-go/internal/registry"

// FrequencyMap is a ticker symbol to non-negative integer frequency
// mapping, the shape of the top-level Extract result.
type FrequencyMap map[string]int

// CalcExactMatchRatio computes the share of top ranges whose entire
// alignment is a single token equal to the ticker's own token id. An empty
// pool is treated as a ratio of 1.0 — there is no name-path noise to gate
// the symbol path against.
func CalcExactMatchRatio(topRanges []*RangeState) float64 {
	if len(topRanges) == 0 {
		return 1.0
	}
	exact := 0
	for _, r := range topRanges {
		if r.IsMatchedOnTickerSymbol {
			exact++
		}
	}
	return float64(exact) / float64(len(topRanges))
}

// CountDocumentNameFrequencies counts, per ticker, the number of distinct
// QueryTokenIndices vectors appearing among its surviving top ranges. A
// ticker cited twice by the same name at different positions counts twice;
// a ticker whose single name appears once counts once.
func CountDocumentNameFrequencies(topRanges []*RangeState) FrequencyMap {
	seen := make(map[string]map[string]struct{})
	for _, r := range topRanges {
		key := intsKey(r.QueryTokenIndices)
		if seen[r.TickerSymbol] == nil {
			seen[r.TickerSymbol] = make(map[string]struct{})
		}
		seen[r.TickerSymbol][key] = struct{}{}
	}

	freqs := make(FrequencyMap, len(seen))
	for ticker, variants := range seen {
		freqs[ticker] = len(variants)
	}
	return freqs
}

func intsKey(xs []int) string {
	var b []byte
	for _, x := range xs {
		b = append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24), '|')
	}
	return string(b)
}

// CountQuerySymbolFrequencies counts raw occurrences of each ticker symbol
// in the literal-mention token stream. tickerOf resolves a token id to its
// ticker symbol string; ids not resolvable are ignored.
func CountQuerySymbolFrequencies(symbolTokenIDs []registry.TokenId, tickerOf func(registry.TokenId) (string, bool)) FrequencyMap {
	freqs := make(FrequencyMap)
	for _, id := range symbolTokenIDs {
		symbol, ok := tickerOf(id)
		if !ok {
			continue
		}
		freqs[symbol]++
	}
	return freqs
}

// Reconcile applies the reconciliation rules that combine document-name
// frequencies with query-symbol frequencies:
//  1. if the exact-match ratio among top ranges falls below threshold,
//     the entire query-symbol set is discarded (the document does not look
//     like a ticker listing, so common words coinciding with a ticker must
//     not leak through; an empty pool has ratio 1.0 and is never gated);
//  2. tickers already represented in the document-name set are dropped
//     from the query-symbol set;
//  3. for each remaining query-symbol ticker, its count is decremented by
//     one for every top range whose token ids include that ticker's own
//     token id, saturating at zero — this avoids double-counting a ticker
//     mentioned once that is matched both as a literal symbol and via its
//     own one-token company sequence;
//  4. tickers whose adjusted count reaches zero are dropped;
//  5. the two maps are summed key-wise into the final result.
func Reconcile(
	documentFreqs FrequencyMap,
	querySymbolFreqs FrequencyMap,
	topRanges []*RangeState,
	ratioExact float64,
	thresholdRatioExactMatches float64,
	tickerTokenID func(ticker string) (registry.TokenId, bool),
) FrequencyMap {
	if ratioExact < thresholdRatioExactMatches {
		querySymbolFreqs = FrequencyMap{}
	}

	adjusted := make(FrequencyMap, len(querySymbolFreqs))
	for ticker, count := range querySymbolFreqs {
		if _, ok := documentFreqs[ticker]; ok {
			continue
		}
		adjusted[ticker] = count
	}

	for _, r := range topRanges {
		for ticker, count := range adjusted {
			tokenID, ok := tickerTokenID(ticker)
			if !ok {
				continue
			}
			if containsTokenID(r.QueryTextDocTokenIDs, tokenID) {
				if count > 0 {
					count--
				}
				adjusted[ticker] = count
			}
		}
	}

	for ticker, count := range adjusted {
		if count <= 0 {
			delete(adjusted, ticker)
		}
	}

	combined := make(FrequencyMap, len(documentFreqs)+len(adjusted))
	for ticker, count := range documentFreqs {
		combined[ticker] += count
	}
	for ticker, count := range adjusted {
		combined[ticker] += count
	}
	return combined
}

func containsTokenID(ids []registry.TokenId, target registry.TokenId) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
