package board

import "errors"

// Sentinel errors for board validation.
var (
	// ErrDegenerateBoard indicates a board rectangle with zero or negative extent.
	ErrDegenerateBoard = errors.New("board: degenerate board rectangle")

	// ErrInvalidLayerCount indicates a layer count less than 1.
	ErrInvalidLayerCount = errors.New("board: layer count must be >= 1")

	// ErrInvalidTraceWidth indicates a non-positive minimum trace width.
	ErrInvalidTraceWidth = errors.New("board: minimum trace width must be > 0")

	// ErrUnreachableEndpoints indicates a net with fewer than 2 reachable endpoints.
	ErrUnreachableEndpoints = errors.New("board: connection has fewer than 2 reachable endpoints")

	// ErrObstacleOccludesTarget indicates an obstacle that fully occludes a
	// connection endpoint on every layer the endpoint is allowed to use.
	ErrObstacleOccludesTarget = errors.New("board: obstacle fully occludes a connection endpoint")

	// ErrEmptyConnectionName indicates a connection with an empty name.
	ErrEmptyConnectionName = errors.New("board: connection name is empty")
)
