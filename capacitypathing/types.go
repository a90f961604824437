package capacitypathing

// Config tunes the A* cost model and the multi-section optimizer of
// spec.md §4.5.
type Config struct {
	// MaxCapacityFactor scales allowed per-node overload; 1.0 means no
	// overload permitted. Values >1 require AcknowledgeOverload (spec.md
	// §9 open question, resolved in SPEC_FULL.md item 2).
	MaxCapacityFactor float64

	// AcknowledgeOverload must be true for MaxCapacityFactor>1 to pass
	// Validate.
	AcknowledgeOverload bool

	// CongestionWeight scales the congestion penalty term added to edge
	// traversal cost.
	CongestionWeight float64

	// CongestionExponent is the power the usedCapacity/totalCapacity ratio
	// is raised to.
	CongestionExponent float64

	// ExpansionDegrees bounds the BFS hop radius used when extracting a
	// subgraph around the most congested node for re-optimization.
	ExpansionDegrees int

	// MaxSectionAttempts bounds how many rip-up/re-route rounds the
	// multi-section optimizer will run before giving up.
	MaxSectionAttempts int

	// SeedsPerSection is how many shuffled orderings are tried per
	// section re-optimization round.
	SeedsPerSection int

	// ShuffleSeed seeds the per-instance PRNG (rng.Rand) used for
	// shuffled orderings, for deterministic reruns (spec.md §8 S5).
	ShuffleSeed uint32
}

// DefaultConfig returns the defaults used when a caller does not override
// a field.
func DefaultConfig() Config {
	return Config{
		MaxCapacityFactor:  1.0,
		CongestionWeight:   5.0,
		CongestionExponent: 2.0,
		ExpansionDegrees:   2,
		MaxSectionAttempts: 8,
		SeedsPerSection:    4,
		ShuffleSeed:        1,
	}
}

// Validate enforces the MAX_CAPACITY_FACTOR>1 loud-failure gate.
func (c Config) Validate() error {
	if c.MaxCapacityFactor > 1 && !c.AcknowledgeOverload {
		return ErrOverloadPermitted
	}

	return nil
}

// Request is one connection to be routed at the node level.
type Request struct {
	ConnectionName string
	RootName       string
	StartNodeID    string
	GoalNodeID     string
	StraightLine   float64 // Euclidean distance between the original endpoints, for ordering and scoring
}

// Result is the node-level path found (or not) for one Request.
type Result struct {
	ConnectionName string
	RootName       string
	NodeSequence   []string
	Cost           float64
	Failed         bool
}
