package unravel

import (
	"sort"

	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/rng"
)

// Solver runs the initial per-connection pass and the section-based
// rip-up/reroute loop of spec.md §4.8 over a single meshgraph.Graph.
type Solver struct {
	g       *meshgraph.Graph
	cfg     Config
	results map[string]*Result
	byName  map[string]Request
	order   []string

	mem     memory
	rand    *rng.Rand
	attempt int
}

// NewSolver returns a Solver bound to g and cfg.
func NewSolver(g *meshgraph.Graph, cfg Config) *Solver {
	return &Solver{
		g:       g,
		cfg:     cfg,
		results: make(map[string]*Result),
		mem:     make(memory),
		rand:    rng.New(cfg.ShuffleSeed),
	}
}

// RouteAll runs Search for every request in order, committing each
// result's port points as assigned before the next request is attempted.
func (s *Solver) RouteAll(reqs []Request) []Result {
	s.byName = make(map[string]Request, len(reqs))
	for _, req := range reqs {
		s.byName[req.ConnectionName] = req
	}

	out := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		res := s.routeOne(req, nil, s.rand.Uint32())
		s.results[req.ConnectionName] = &res
		s.order = append(s.order, req.ConnectionName)
		out = append(out, res)
	}

	return out
}

func (s *Solver) routeOne(req Request, blocked map[string]bool, seed uint32) Result {
	res, err := Search(s.g, req, s.cfg, s.mem, blocked, seed)
	if err != nil {
		return Result{ConnectionName: req.ConnectionName, RootName: req.RootName, Failed: true}
	}
	s.commit(req, res)

	return res
}

func (s *Solver) commit(req Request, res Result) {
	for _, portID := range res.PortSequence {
		_ = s.g.Assign(portID, meshgraph.Assignment{ConnectionName: req.ConnectionName, RootNet: req.RootName})
	}
}

func (s *Solver) release(res *Result) {
	if res == nil || res.Failed {
		return
	}
	for _, portID := range res.PortSequence {
		if a, ok := s.g.AssignmentOf(portID); ok && a.ConnectionName == res.ConnectionName {
			s.g.Release(portID)
		}
	}
}

// Results returns the current per-connection results, in routed order.
func (s *Solver) Results() []Result {
	out := make([]Result, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.results[name])
	}

	return out
}

// BoardScore returns the current additive board score.
func (s *Solver) BoardScore() float64 { return BoardScore(s.g) }

// refreshMemory updates the per-node Pf memory from the graph's current
// assignments.
func (s *Solver) refreshMemory() {
	for _, id := range s.g.NodeIDs() {
		s.mem[id] = NodePf(s.g, id)
	}
}

// worstNode returns the node id with the highest current Pf.
func (s *Solver) worstNode() (string, float64, bool) {
	best := ""
	bestPf := -1.0
	for _, id := range s.g.NodeIDs() {
		pf := NodePf(s.g, id)
		if pf > bestPf {
			bestPf = pf
			best = id
		}
	}

	return best, bestPf, best != ""
}

func (s *Solver) subgraphWithin(center string, degrees int) map[string]bool {
	visited := map[string]bool{center: true}
	frontier := []string{center}
	for d := 0; d < degrees; d++ {
		var next []string
		for _, id := range frontier {
			for _, e := range s.g.Neighbors(id) {
				nb := e.Other(id)
				if !visited[nb] {
					visited[nb] = true
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	return visited
}

// complementOf returns every node id in s.g not present in sub, i.e. the
// blocked set that confines a Search to sub.
func (s *Solver) complementOf(sub map[string]bool) map[string]bool {
	ids := s.g.NodeIDs()
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !sub[id] {
			out[id] = true
		}
	}

	return out
}

func (s *Solver) touchingSubgraph(sub map[string]bool) []string {
	var names []string
	for _, name := range s.order {
		res := s.results[name]
		if res.Failed {
			continue
		}
		for _, id := range res.NodeSequence {
			if sub[id] {
				names = append(names, name)

				break
			}
		}
	}

	return names
}

// Optimize runs OptimizeOnce to a fixpoint or until MaxSectionAttempts or
// AcceptablePf convergence, whichever comes first.
func (s *Solver) Optimize() {
	for s.attempt < s.cfg.MaxSectionAttempts {
		if !s.OptimizeOnce() {
			return
		}
	}
}

// OptimizeOnce performs one bounded section rip-up/reroute round: it
// refreshes the Pf memory, picks the highest-Pf node, extracts its
// subgraph, rips up RipFraction of the touching connections, and tries
// SeedsPerSection re-routings, committing whichever attempt strictly
// improves both the section's local board score and the global board
// score, and reverting otherwise.
func (s *Solver) OptimizeOnce() bool {
	if s.attempt >= s.cfg.MaxSectionAttempts {
		return false
	}
	s.attempt++
	s.refreshMemory()

	worst, worstPf, ok := s.worstNode()
	if !ok || worstPf <= s.cfg.AcceptablePf {
		return false
	}

	sub := s.subgraphWithin(worst, s.cfg.ExpansionDegrees)
	names := s.touchingSubgraph(sub)
	if len(names) == 0 {
		return false
	}
	ripCount := int(float64(len(names))*s.cfg.RipFraction + 0.5)
	if ripCount < 1 {
		ripCount = 1
	}
	if ripCount > len(names) {
		ripCount = len(names)
	}
	sort.Strings(names) // deterministic before seed-driven shuffling below
	toRip := names[:ripCount]

	globalBefore := s.BoardScore()
	sectionBefore := s.sectionScore(sub)

	snapshot := s.snapshotResults(toRip)
	s.ripUp(toRip)

	var bestResults map[string]Result
	bestSectionScore := sectionBefore

	for seed := 0; seed < s.cfg.SeedsPerSection; seed++ {
		attemptSeed := s.rand.Derive(uint32(s.attempt*1000 + seed))
		attemptResults := s.rerouteWithin(toRip, sub, attemptSeed.Uint32())

		s.applyResults(attemptResults)
		sectionScore := s.sectionScore(sub)
		globalScore := s.BoardScore()

		if sectionScore < bestSectionScore && globalScore < globalBefore {
			bestSectionScore = sectionScore
			bestResults = attemptResults
		}
		s.ripUp(toRip)
	}

	if bestResults != nil {
		s.commitResults(bestResults)
	} else {
		s.commitResults(snapshot)
	}

	return true
}

// commitResults stores results and re-assigns their port sequences,
// which the section loop always leaves released between trials.
func (s *Solver) commitResults(results map[string]Result) {
	for name, res := range results {
		stored := res
		s.results[name] = &stored
		if !res.Failed {
			req := s.byName[name]
			s.commit(req, res)
		}
	}
}

func (s *Solver) sectionScore(sub map[string]bool) float64 {
	total := 0.0
	for id := range sub {
		total += FailureCost(NodePf(s.g, id))
	}

	return total
}

func (s *Solver) snapshotResults(names []string) map[string]Result {
	out := make(map[string]Result, len(names))
	for _, name := range names {
		out[name] = *s.results[name]
	}

	return out
}

// ripUp releases the currently-stored assignments for names.
func (s *Solver) ripUp(names []string) {
	for _, name := range names {
		s.release(s.results[name])
	}
}

// rerouteWithin re-runs Search for each name confined to sub (Search's
// blocked set is sub's complement, so the search can only travel through
// the extracted subgraph and the request's goal node), seeded from seed plus the name's position, and
// returns the resulting Results without committing beyond what Search's
// caller (applyResults) does.
func (s *Solver) rerouteWithin(names []string, sub map[string]bool, seed uint32) map[string]Result {
	blocked := s.complementOf(sub)
	out := make(map[string]Result, len(names))
	for i, name := range names {
		req := s.byName[name]
		res, err := Search(s.g, req, s.cfg, s.mem, blocked, seed+uint32(i))
		if err != nil {
			out[name] = Result{ConnectionName: req.ConnectionName, RootName: req.RootName, Failed: true}

			continue
		}
		s.commit(req, res)
		out[name] = res
	}

	return out
}

// applyResults replaces the stored result for each name with the given
// one. It neither assigns nor releases port points; rerouteWithin has
// already committed them.
func (s *Solver) applyResults(results map[string]Result) {
	for name, res := range results {
		stored := res
		s.results[name] = &stored
	}
}
