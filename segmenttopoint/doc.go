// Package segmenttopoint implements spec.md §4.7: given an edge's ordered
// crossing list from edgetoportsegments and a minimum spacing derived from
// trace width and margin, it places discrete (x,y,z) port points along the
// edge's shared boundary segment, preserving the crossing order and
// picking the lowest available z unless obstacle occlusion forces
// otherwise. A segment too short to fit all its crossings at the required
// spacing is reported rather than silently compressed (spec.md §4.7, §7
// "Capacity exhaustion").
package segmenttopoint
