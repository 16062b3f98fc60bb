package layout

// AssignDummyChainParents walks every edge chain produced by NormalizeEdges
// and assigns each chain node to a cluster. The chain follows the path in
// the cluster tree from the edge's tail parent up to the lowest common
// ancestor and back down to the head parent, tracking which cluster a dummy
// at a given rank falls inside.
func AssignDummyChainParents(g *Graph) {
	if len(g.DummyChains) == 0 {
		return
	}
	postorder := clusterPostorder(g)

	for _, first := range g.DummyChains {
		node := g.NodeLabelOf(first)
		edgeObj := *node.EdgeObj
		path, lca := clusterPath(g, postorder, edgeObj.V, edgeObj.W)

		pathIdx := 0
		pathV := path[pathIdx]
		ascending := true
		v := first

		for v != edgeObj.W {
			node = g.NodeLabelOf(v)

			if ascending {
				for pathV != lca && g.NodeLabelOf(pathV).MaxRank < node.Rank {
					pathIdx++
					pathV = path[pathIdx]
				}
				if pathV == lca {
					ascending = false
				}
			}

			if !ascending {
				for pathIdx < len(path)-1 && g.NodeLabelOf(path[pathIdx+1]).MinRank <= node.Rank {
					pathIdx++
				}
				pathV = path[pathIdx]
			}

			if pathV != "" {
				g.SetParent(v, pathV)
			}
			v = g.Successors(v)[0]
		}
	}
}

type clusterOrder struct {
	low int
	lim int
}

// clusterPostorder numbers the cluster tree so ancestry can be tested in
// constant time. A node a is an ancestor of b iff low(a) <= lim(b) <= lim(a).
func clusterPostorder(g *Graph) map[string]clusterOrder {
	result := make(map[string]clusterOrder)
	lim := 0
	var dfs func(v string)
	dfs = func(v string) {
		low := lim
		for _, child := range g.Children(v) {
			dfs(child)
		}
		result[v] = clusterOrder{low: low, lim: lim}
		lim++
	}
	for _, v := range g.Children("") {
		dfs(v)
	}
	return result
}

// clusterPath returns the cluster-tree path from v's parent up to the
// lowest common ancestor and down to w's parent, plus the ancestor itself.
// The empty string stands for the root of the cluster tree.
func clusterPath(g *Graph, postorder map[string]clusterOrder, v, w string) ([]string, string) {
	vPath := []string{}
	wPath := []string{}
	low := postorder[v].low
	if postorder[w].low < low {
		low = postorder[w].low
	}
	lim := postorder[v].lim
	if postorder[w].lim > lim {
		lim = postorder[w].lim
	}

	// Climb from v until we reach an ancestor of both endpoints. The
	// ancestor itself ends the path segment.
	parent := g.Parent(v)
	for {
		vPath = append(vPath, parent)
		if parent == "" {
			break
		}
		po := postorder[parent]
		if po.low <= low && lim <= po.lim {
			break
		}
		parent = g.Parent(parent)
	}
	lca := parent

	// Climb from w until we hit the same ancestor.
	parent = g.Parent(w)
	for parent != lca {
		wPath = append(wPath, parent)
		parent = g.Parent(parent)
	}

	path := vPath
	for i := len(wPath) - 1; i >= 0; i-- {
		path = append(path, wPath[i])
	}
	return path, lca
}
