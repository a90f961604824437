package meshgraph

import "errors"

// Sentinel errors for mesh graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("meshgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("meshgraph: edge not found")

	// ErrPortPointNotFound indicates an operation referenced a non-existent port point.
	ErrPortPointNotFound = errors.New("meshgraph: port point not found")

	// ErrDuplicateNodeID indicates a node was added with an ID already in use.
	ErrDuplicateNodeID = errors.New("meshgraph: duplicate node id")

	// ErrSelfEdge indicates an edge was added connecting a node to itself.
	ErrSelfEdge = errors.New("meshgraph: edge endpoints must differ")

	// ErrNoMutualLayers indicates an edge was added between nodes with no
	// shared available layer.
	ErrNoMutualLayers = errors.New("meshgraph: edge endpoints share no layer")

	// ErrAlreadyAssigned indicates a port point already claimed by a
	// different root connection was assigned again.
	ErrAlreadyAssigned = errors.New("meshgraph: port point already assigned to a different net")
)
