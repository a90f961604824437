package highdensityrouting

import "errors"

// ErrViaOutsideBounds indicates a node rectangle narrower or shorter than
// twice the via inset (d_v/2 + margin), so no transition via fits inside
// it; an internal invariant violation (spec.md §7) since every node is
// assumed wide enough for its own minimum via diameter.
var ErrViaOutsideBounds = errors.New("highdensityrouting: via location outside node bounds")
