package matchengine

import "github.com/jzombie/ticker-sniffer-go/internal/registry"

// SequenceLengthLookup resolves the length of one company sequence, as
// recorded by the corpus index at ingestion time.
type SequenceLengthLookup func(tickerSymbolTokenID registry.TokenId, sequenceIdx int) (int, bool)

// TickerSymbolLookup resolves a ticker's canonical token id back to its
// symbol string.
type TickerSymbolLookup func(tickerSymbolTokenID registry.TokenId) (string, bool)

// sentinelIndex can never equal a valid index (indices are >= 0), so the
// continuity predicates below always force a new range on first sight.
const sentinelIndex = -2

// CollectRangeStates scans parity states (already sorted per
// CollectParityStates) and partitions them into maximal contiguous
// alignments per ticker and company sequence, following the state machine
// Idle → InRange → Finalizing → Idle.
func CollectRangeStates(candidates CandidateSequences, parityStates []ParityState, sequenceLength SequenceLengthLookup, tickerSymbol TickerSymbolLookup) []*RangeState {
	var ranges []*RangeState

	for tickerID := range candidates {
		ranges = append(ranges, collectForTicker(tickerID, parityStates, sequenceLength, tickerSymbol)...)
	}

	return dedupeRanges(ranges)
}

func collectForTicker(tickerID registry.TokenId, parityStates []ParityState, sequenceLength SequenceLengthLookup, tickerSymbolOf TickerSymbolLookup) []*RangeState {
	var ranges []*RangeState

	lastSeqIdx := sentinelIndex
	lastSeqTokenIdx := sentinelIndex
	lastQueryIdx := sentinelIndex

	var current *RangeState

	finalizeCurrent := func() {
		if current == nil {
			return
		}
		if !current.IsFinalized {
			current.Finalize()
		}
		if len(current.QueryTokenIndices) > 0 {
			ranges = append(ranges, current)
		}
		current = nil
	}

	for _, p := range parityStates {
		if p.TickerSymbolTokenID != tickerID {
			lastSeqIdx = sentinelIndex
			lastSeqTokenIdx = sentinelIndex
			lastQueryIdx = sentinelIndex
			continue
		}

		isNewSubSequence := p.CompanySequenceTokenIdx == 0 ||
			lastSeqIdx != p.CompanySequenceIdx ||
			p.CompanySequenceTokenIdx != lastSeqTokenIdx+1 ||
			p.QueryTokenIdx != lastQueryIdx+1

		if isNewSubSequence {
			finalizeCurrent()

			maxLen, _ := sequenceLength(tickerID, p.CompanySequenceIdx)
			symbol, _ := tickerSymbolOf(tickerID)
			current = NewRangeState(symbol, tickerID, p.CompanySequenceIdx, maxLen)
		}

		// A parity state that opens a new range only anchors it when it
		// sits at the sequence's first token; otherwise it cannot anchor a
		// valid prefix match and is discarded.
		if !(isNewSubSequence && p.CompanySequenceTokenIdx != 0) {
			current.AddPartialState(p.QueryTokenIdx, p.QueryTokenID, p.CompanySequenceTokenIdx)
		}

		lastSeqIdx = p.CompanySequenceIdx
		lastSeqTokenIdx = p.CompanySequenceTokenIdx
		lastQueryIdx = p.QueryTokenIdx
	}

	finalizeCurrent()

	return ranges
}

type dedupeKey struct {
	ticker      string
	sequenceIdx int
	tokenIDsKey string
}

// dedupeRanges removes ranges that are identical in
// (ticker, query_text_doc_token_ids, company_sequence_idx); duplicates
// arise from the same name being mentioned at several query positions and
// are discarded keeping the first occurrence found.
func dedupeRanges(ranges []*RangeState) []*RangeState {
	seen := make(map[dedupeKey]struct{}, len(ranges))
	out := make([]*RangeState, 0, len(ranges))

	for _, r := range ranges {
		key := dedupeKey{
			ticker:      r.TickerSymbol,
			sequenceIdx: r.CompanySequenceIdx,
			tokenIDsKey: tokenIDsKey(r.QueryTextDocTokenIDs),
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	return out
}

func tokenIDsKey(ids []registry.TokenId) string {
	var b []byte
	for _, id := range ids {
		b = append(b, byte(id), byte(id>>8), byte(id>>16), byte(id>>24), '|')
	}
	return string(b)
}
