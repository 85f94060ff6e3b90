package matchengine

import "github.com/jzombie/ticker-sniffer-go/internal/registry"

// RangeState is the materialization of a contiguous alignment between a
// sub-range of the query token stream and a prefix of one company sequence.
type RangeState struct {
	TickerSymbol        string
	TickerSymbolTokenID registry.TokenId

	QueryTokenIndices           []QueryTokenIndex
	QueryTextDocTokenIDs        []registry.TokenId
	CompanySequenceIdx          int
	CompanySequenceTokenIndices []CompanySequenceTokenIndex
	CompanySequenceMaxLength    int

	CompanyTokenCoverage    float64
	RangeScore              float64
	IsMatchedOnTickerSymbol bool
	IsFinalized             bool
}

// NewRangeState starts a fresh range for one ticker and company sequence.
func NewRangeState(tickerSymbol string, tickerSymbolTokenID registry.TokenId, sequenceIdx, sequenceMaxLength int) *RangeState {
	return &RangeState{
		TickerSymbol:             tickerSymbol,
		TickerSymbolTokenID:      tickerSymbolTokenID,
		CompanySequenceIdx:       sequenceIdx,
		CompanySequenceMaxLength: sequenceMaxLength,
	}
}

// AddPartialState grows the range by one aligned (query, company) token
// pair.
func (r *RangeState) AddPartialState(queryTokenIdx QueryTokenIndex, queryTokenID registry.TokenId, companySequenceTokenIdx CompanySequenceTokenIndex) {
	r.QueryTokenIndices = append(r.QueryTokenIndices, queryTokenIdx)
	r.QueryTextDocTokenIDs = append(r.QueryTextDocTokenIDs, queryTokenID)
	r.CompanySequenceTokenIndices = append(r.CompanySequenceTokenIndices, companySequenceTokenIdx)
}

// Finalize computes derived fields once a range is complete. It is
// idempotent.
func (r *RangeState) Finalize() {
	if r.IsFinalized {
		return
	}
	if r.CompanySequenceMaxLength > 0 {
		r.CompanyTokenCoverage = float64(len(r.QueryTokenIndices)) / float64(r.CompanySequenceMaxLength)
	}
	r.IsMatchedOnTickerSymbol = len(r.QueryTextDocTokenIDs) == 1 && r.QueryTextDocTokenIDs[0] == r.TickerSymbolTokenID
	r.IsFinalized = true
}
