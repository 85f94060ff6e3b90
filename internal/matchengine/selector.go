package matchengine

import "math"

const scoreEpsilon = 1e-9

// CollectTopRangeStates inspects, for each query position, every range
// touching it and keeps those tied at the maximum score for that position.
// The result is the flattened union of all per-position top sets —
// duplicates are expected, since one range can dominate several positions.
func CollectTopRangeStates(queryTokenIDsLen int, ranges []*RangeState) []*RangeState {
	perPosition := make([][]*RangeState, queryTokenIDsLen)

	for queryTokenIdx := 0; queryTokenIdx < queryTokenIDsLen; queryTokenIdx++ {
		for _, r := range ranges {
			if indexOf(r.QueryTokenIndices, queryTokenIdx) < 0 {
				continue
			}
			bucket := perPosition[queryTokenIdx]
			switch {
			case len(bucket) == 0:
				perPosition[queryTokenIdx] = []*RangeState{r}
			case r.RangeScore > bucket[0].RangeScore:
				perPosition[queryTokenIdx] = []*RangeState{r}
			case math.Abs(r.RangeScore-bucket[0].RangeScore) < scoreEpsilon:
				perPosition[queryTokenIdx] = append(bucket, r)
			}
		}
	}

	var top []*RangeState
	for _, bucket := range perPosition {
		top = append(top, bucket...)
	}
	return top
}
