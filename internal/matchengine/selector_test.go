package matchengine

import "testing"

func TestCollectTopRangeStatesKeepsOnlyHighestScore(t *testing.T) {
	weak := &RangeState{QueryTokenIndices: []int{0}, RangeScore: 1.0}
	strong := &RangeState{QueryTokenIndices: []int{0}, RangeScore: 2.0}

	top := CollectTopRangeStates(1, []*RangeState{weak, strong})

	if len(top) != 1 || top[0] != strong {
		t.Fatalf("want only the strong range, got %v", top)
	}
}

func TestCollectTopRangeStatesKeepsTiesWithinEpsilon(t *testing.T) {
	a := &RangeState{QueryTokenIndices: []int{0}, RangeScore: 1.0}
	b := &RangeState{QueryTokenIndices: []int{0}, RangeScore: 1.0}

	top := CollectTopRangeStates(1, []*RangeState{a, b})

	if len(top) != 2 {
		t.Fatalf("want both tied ranges, got %d", len(top))
	}
}

func TestCollectTopRangeStatesFlattensAcrossPositions(t *testing.T) {
	r := &RangeState{QueryTokenIndices: []int{0, 1}, RangeScore: 2.0}

	top := CollectTopRangeStates(2, []*RangeState{r})

	if len(top) != 2 {
		t.Fatalf("want the range counted once per position it spans, got %d", len(top))
	}
}

func TestCollectTopRangeStatesPositionWithNoCandidates(t *testing.T) {
	r := &RangeState{QueryTokenIndices: []int{0}, RangeScore: 1.0}

	top := CollectTopRangeStates(3, []*RangeState{r})

	if len(top) != 1 {
		t.Fatalf("positions 1 and 2 have no candidates, want 1 total, got %d", len(top))
	}
}
