package deadendprune

import "github.com/pcbroute/autoroute/meshgraph"

// Prune removes non-target nodes with degree <= 1 from g, repeating until
// no such node remains. It returns the number of nodes removed.
func Prune(g *meshgraph.Graph) int {
	removed := 0
	for {
		var victim string
		found := false
		for _, id := range g.NodeIDs() {
			n, ok := g.Node(id)
			if !ok || n.ContainsTarget {
				continue
			}
			if g.Degree(id) <= 1 {
				victim = id
				found = true

				break
			}
		}
		if !found {
			return removed
		}
		g.RemoveNode(victim)
		removed++
	}
}
