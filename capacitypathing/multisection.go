package capacitypathing

import (
	"github.com/pcbroute/autoroute/meshgraph"
	"github.com/pcbroute/autoroute/rng"
)

// Solver runs the greedy initial pass and the multi-section rip-up/reroute
// optimizer of spec.md §4.5 over a single meshgraph.Graph.
type Solver struct {
	g       *meshgraph.Graph
	cfg     Config
	results map[string]*Result // by ConnectionName
	order   []string           // ConnectionName in routed order

	byName  map[string]Request
	rand    *rng.Rand
	attempt int
}

// NewSolver returns a Solver bound to g and cfg. cfg must already have
// passed Validate.
func NewSolver(g *meshgraph.Graph, cfg Config) *Solver {
	return &Solver{
		g:       g,
		cfg:     cfg,
		results: make(map[string]*Result),
		rand:    rng.New(cfg.ShuffleSeed),
	}
}

// RouteAll performs the initial greedy pass over reqs, longest-first, each
// claiming capacity along its path before the next request is attempted.
func (s *Solver) RouteAll(reqs []Request) []Result {
	ordered := OrderRequests(reqs)
	s.byName = make(map[string]Request, len(ordered))
	for _, req := range ordered {
		s.byName[req.ConnectionName] = req
	}
	out := make([]Result, 0, len(ordered))
	for _, req := range ordered {
		res := s.routeOne(req, nil)
		s.results[req.ConnectionName] = &res
		s.order = append(s.order, req.ConnectionName)
		out = append(out, res)
	}

	return out
}

func (s *Solver) routeOne(req Request, blocked map[string]bool) Result {
	path, cost, err := FindPath(s.g, req.StartNodeID, req.GoalNodeID, s.cfg, blocked)
	if err != nil {
		return Result{ConnectionName: req.ConnectionName, RootName: req.RootName, Failed: true}
	}
	s.claim(path)

	return Result{ConnectionName: req.ConnectionName, RootName: req.RootName, NodeSequence: path, Cost: cost}
}

func (s *Solver) claim(path []string) {
	for _, id := range path {
		if n, ok := s.g.Node(id); ok {
			n.UsedCapacity++
		}
	}
}

func (s *Solver) release(path []string) {
	for _, id := range path {
		if n, ok := s.g.Node(id); ok && n.UsedCapacity > 0 {
			n.UsedCapacity--
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

// mostCongestedNode returns the node id with the highest CongestionRatio,
// breaking ties by id for determinism. Returns "", false if the graph has
// no nodes.
func (s *Solver) mostCongestedNode() (string, bool) {
	best := ""
	bestRatio := -1.0
	for _, id := range s.g.NodeIDs() {
		n := s.g.MustNode(id)
		r := n.CongestionRatio()
		if r > bestRatio {
			bestRatio = r
			best = id
		}
	}

	return best, best != ""
}

// subgraphWithin returns the set of node ids reachable from center within
// degrees hops, via breadth-first expansion over the adjacency.
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
// blocked set that confines a FindPath search to sub.
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

// touchingSubgraph returns the ConnectionNames of every routed request
// whose path enters sub.
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

// totalCost sums the Cost of every non-failed result named in names.
func (s *Solver) totalCost(names []string) float64 {
	total := 0.0
	for _, name := range names {
		if r := s.results[name]; !r.Failed {
			total += r.Cost
		}
	}

	return total
}

// Optimize runs OptimizeOnce to a fixpoint or until MaxSectionAttempts is
// reached, whichever comes first.
func (s *Solver) Optimize() {
	for s.attempt < s.cfg.MaxSectionAttempts {
		if !s.OptimizeOnce() {
			return
		}
	}
}

// OptimizeOnce performs exactly one bounded rip-up/reroute round of
// spec.md §4.5: it identifies the most congested node, extracts the
// subgraph of connections touching its neighborhood, and tries
// SeedsPerSection shuffled re-routings of just those connections, keeping
// whichever attempt (including the original) has the fewest failures and
// then the lowest total cost. It returns false once there is nothing left
// worth ripping up or the attempt budget is spent, so a caller such as
// Stage.Step can drive one round at a time.
func (s *Solver) OptimizeOnce() bool {
	if s.attempt >= s.cfg.MaxSectionAttempts {
		return false
	}
	s.attempt++

	center, ok := s.mostCongestedNode()
	if !ok {
		return false
	}
	if s.g.MustNode(center).CongestionRatio() < 1.0 {
		return false // nothing left worth ripping up
	}
	sub := s.subgraphWithin(center, s.cfg.ExpansionDegrees)
	names := s.touchingSubgraph(sub)
	if len(names) == 0 {
		return false
	}

	baseline := s.snapshotResults(names)
	baselineCost := s.totalCost(names)
	s.ripUp(names)

	bestCost := baselineCost
	bestResults := baseline
	bestFailures := s.countFailuresIn(baseline, names)

	for seed := 0; seed < s.cfg.SeedsPerSection; seed++ {
		sectionRand := s.rand.Derive(uint32(s.attempt*1000 + seed))
		shuffled := make([]string, len(names))
		copy(shuffled, names)
		sectionRand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		attemptResults := s.reroute(shuffled, s.byName, sub)
		cost := 0.0
		failures := 0
		for _, res := range attemptResults {
			if res.Failed {
				failures++
			} else {
				cost += res.Cost
			}
		}
		if failures < bestFailures || (failures == bestFailures && cost < bestCost) {
			bestCost = cost
			bestFailures = failures
			bestResults = attemptResults
		}
		s.releaseResults(attemptResults) // undo this attempt's claims before trying the next seed
	}

	s.applyResults(names, bestResults)

	return true
}

func (s *Solver) snapshotResults(names []string) map[string]Result {
	out := make(map[string]Result, len(names))
	for _, name := range names {
		out[name] = *s.results[name]
	}

	return out
}

func (s *Solver) countFailuresIn(snap map[string]Result, names []string) int {
	n := 0
	for _, name := range names {
		if snap[name].Failed {
			n++
		}
	}

	return n
}

// ripUp releases the claimed capacity for every connection named, reading
// the currently-stored result for each.
func (s *Solver) ripUp(names []string) {
	for _, name := range names {
		if res := s.results[name]; res != nil && !res.Failed {
			s.release(res.NodeSequence)
		}
	}
}

// releaseResults releases the claimed capacity recorded in an
// not-yet-committed result set, keyed by connection name.
func (s *Solver) releaseResults(results map[string]Result) {
	for _, res := range results {
		if !res.Failed {
			s.release(res.NodeSequence)
		}
	}
}

// reroute re-runs FindPath for each connection in order, confined to sub
// (FindPath's blocked set is sub's complement, so the search can only
// travel through the extracted subgraph), claiming capacity as it goes,
// and returns the resulting per-connection Results without committing
// them to s.results.
func (s *Solver) reroute(names []string, byName map[string]Request, sub map[string]bool) map[string]Result {
	blocked := s.complementOf(sub)
	out := make(map[string]Result, len(names))
	for _, name := range names {
		req := byName[name]
		res := s.routeOne(req, blocked)
		out[name] = res
	}

	return out
}

// applyResults commits results for names and reclaims their capacity,
// replacing whatever s.results previously held.
func (s *Solver) applyResults(names []string, results map[string]Result) {
	for _, name := range names {
		res := results[name]
		if !res.Failed {
			s.claim(res.NodeSequence)
		}
		stored := res
		s.results[name] = &stored
	}
}
