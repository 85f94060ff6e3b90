// Package matchengine implements the alignment pipeline that turns a
// tokenized query and a corpus index into a ticker→frequency map: parity
// collection, range building, scoring, top-per-position selection, and
// frequency aggregation with the literal-symbol reconciliation rules.
package matchengine

import (
	"sort"

	"github.com/jzombie/ticker-sniffer-go/internal/registry"
)

// QueryTokenIndex is a position within the query's document-token id
// vector.
type QueryTokenIndex = int

// CompanySequenceTokenIndex is a position within one company token
// sequence.
type CompanySequenceTokenIndex = int

// CandidateSequence pairs a company sequence's index (within its ticker's
// sequence list) with its token ids, restricted to sequences whose first
// token matches some query token — the first-token anchoring that bounds
// the search space.
type CandidateSequence struct {
	SequenceIndex int
	TokenIDs      []registry.TokenId
}

// CandidateSequences maps a ticker's canonical token id to the company
// sequences worth scanning against a particular query.
type CandidateSequences map[registry.TokenId][]CandidateSequence

// ParityState records one coincidence between a query token and a
// company-sequence token at specific positions.
type ParityState struct {
	TickerSymbolTokenID     registry.TokenId
	QueryTokenIdx           QueryTokenIndex
	QueryTokenID            registry.TokenId
	CompanySequenceIdx      int
	CompanySequenceTokenIdx CompanySequenceTokenIndex
}

// CollectParityStates scans every candidate sequence against every query
// token and emits one ParityState per exact token-id coincidence. The
// result is sorted by (ticker, sequence index, query index, sequence
// position) so the range builder can scan it as contiguous runs.
func CollectParityStates(queryTokenIDs []registry.TokenId, candidates CandidateSequences) []ParityState {
	var states []ParityState

	for tickerID, sequences := range candidates {
		for _, seq := range sequences {
			for queryIdx, queryTokenID := range queryTokenIDs {
				for seqTokenIdx, seqTokenID := range seq.TokenIDs {
					if seqTokenID == queryTokenID {
						states = append(states, ParityState{
							TickerSymbolTokenID:     tickerID,
							QueryTokenIdx:           queryIdx,
							QueryTokenID:            queryTokenID,
							CompanySequenceIdx:      seq.SequenceIndex,
							CompanySequenceTokenIdx: seqTokenIdx,
						})
					}
				}
			}
		}
	}

	sort.Slice(states, func(i, j int) bool {
		a, b := states[i], states[j]
		if a.TickerSymbolTokenID != b.TickerSymbolTokenID {
			return a.TickerSymbolTokenID < b.TickerSymbolTokenID
		}
		if a.CompanySequenceIdx != b.CompanySequenceIdx {
			return a.CompanySequenceIdx < b.CompanySequenceIdx
		}
		if a.QueryTokenIdx != b.QueryTokenIdx {
			return a.QueryTokenIdx < b.QueryTokenIdx
		}
		return a.CompanySequenceTokenIdx < b.CompanySequenceTokenIdx
	})

	return states
}
