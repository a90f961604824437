package capacitypathing

import "sort"

// OrderRequests sorts reqs by descending StraightLine length, so the
// longest (most capacity-hungry) connections are routed first and claim
// the straightest paths while the mesh is least congested. Ties break on
// ConnectionName for a deterministic, reproducible order (spec.md §8 S5).
func OrderRequests(reqs []Request) []Request {
	ordered := make([]Request, len(reqs))
	copy(ordered, reqs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].StraightLine != ordered[j].StraightLine {
			return ordered[i].StraightLine > ordered[j].StraightLine
		}

		return ordered[i].ConnectionName < ordered[j].ConnectionName
	})

	return ordered
}
