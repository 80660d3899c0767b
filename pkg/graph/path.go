package graph

// hop records how BFS first reached a person: the person it came from and
// the relation it crossed.
type hop struct {
	prev       string
	relationID string
}

// FindPath returns the shortest sequence of relation ids connecting fromID
// to toID over the undirected projection of all relations, regardless of
// type. It returns an empty slice iff fromID == toID, and nil when toID is
// unreachable.
//
// The search is plain BFS with a visited set, so it terminates on cyclic or
// contradictory data. The queue is FIFO and each person's incident edges
// are visited in the relation list's original order, which makes the result
// deterministic: among equal-length paths, the one using earlier-inserted
// relations wins.
func (g *RelationGraph) FindPath(fromID, toID string) []string {
	if fromID == toID {
		return []string{}
	}

	visited := map[string]bool{fromID: true}
	via := make(map[string]hop)
	queue := []string{fromID}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, relID := range g.incidence[cur] {
			rel := g.relations[relID]
			next, ok := rel.Other(cur)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			via[next] = hop{prev: cur, relationID: relID}
			if next == toID {
				return g.tracePath(fromID, toID, via)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// tracePath walks the via map back from toID to fromID and returns the
// relation ids in forward order.
func (g *RelationGraph) tracePath(fromID, toID string, via map[string]hop) []string {
	var rev []string
	for cur := toID; cur != fromID; {
		h := via[cur]
		rev = append(rev, h.relationID)
		cur = h.prev
	}
	path := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
