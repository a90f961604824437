package autoroute

import "errors"

// ErrBoardScoreTooLow is returned by Route when Config.MinAllowedBoardScore
// is set and the unravel stage's summed failure cost exceeds it (spec.md
// §7's board-score gate). The Report is still returned alongside this
// error so a caller can inspect what was produced.
var ErrBoardScoreTooLow = errors.New("autoroute: board score exceeds MinAllowedBoardScore")
