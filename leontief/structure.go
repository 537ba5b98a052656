// SPDX-License-Identifier: MIT

package leontief

// Visitation states for the sector dependency traversal.
const (
	white = iota // not visited yet
	gray         // on the DFS stack
	black        // fully explored
)

// Irreducible reports whether every sector depends, directly or indirectly,
// on every other sector. The dependency graph has an edge j→i whenever
// A[i][j] > 0 (sector i consumes part of sector j's output); the economy is
// irreducible iff that graph is strongly connected.
//
// A reducible economy splits into blocks whose demand never reaches some
// other block, which is worth flagging next to the equilibrium.
//
// Complexity: O(n^2) for the two traversals over the dense table.
func (e *Economy) Irreducible() bool {
	n := e.Size()
	if n == 1 {
		return true
	}
	coeffs := e.Coefficients()

	forward := func(u, v int) bool { return coeffs[v][u] > 0 } // u supplies v
	reverse := func(u, v int) bool { return coeffs[u][v] > 0 } // v supplies u

	return reachesAll(n, forward) && reachesAll(n, reverse)
}

// Downstream returns the sectors reachable from sector `from` along supply
// edges, i.e. the sectors whose production changes when `from` changes.
// The result is in model order and excludes `from` unless it lies on a cycle.
func (e *Economy) Downstream(from int) ([]string, error) {
	n := e.Size()
	if from < 0 || from >= n {
		return nil, leontiefErrorf("Downstream", ErrShape)
	}
	coeffs := e.Coefficients()
	state := dfs(n, from, func(u, v int) bool { return coeffs[v][u] > 0 })

	labels := e.Labels()
	out := make([]string, 0, n)
	for v := 0; v < n; v++ {
		if v == from {
			if selfReachable(n, from, coeffs) {
				out = append(out, labels[v])
			}
			continue
		}
		if state[v] == black {
			out = append(out, labels[v])
		}
	}

	return out, nil
}

// reachesAll runs a DFS from sector 0 and reports whether every sector was reached.
func reachesAll(n int, edge func(u, v int) bool) bool {
	state := dfs(n, 0, edge)
	for _, s := range state {
		if s != black {
			return false
		}
	}

	return true
}

// dfs is an iterative white/gray/black traversal from start.
// Neighbors are visited in ascending index order, so results are deterministic.
func dfs(n, start int, edge func(u, v int) bool) []int {
	state := make([]int, n)
	stack := []int{start}
	state[start] = gray
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < n; v++ {
			if state[v] == white && edge(u, v) {
				state[v] = gray
				stack = append(stack, v)
			}
		}
		state[u] = black
	}

	return state
}

// selfReachable reports whether sector s lies on a supply cycle (including a self-loop).
func selfReachable(n, s int, coeffs [][]float64) bool {
	if coeffs[s][s] > 0 {
		return true
	}
	for u := 0; u < n; u++ {
		if u == s || coeffs[u][s] <= 0 { // s supplies u?
			continue
		}
		state := dfs(n, u, func(a, b int) bool { return coeffs[b][a] > 0 })
		if state[s] == black {
			return true
		}
	}

	return false
}
