package shortestpath

// RestorePath rebuilds the explicit vertex sequence from source to
// target out of a parent table produced by either engine.
//
// Returns nil (an empty path) when:
//
//   - target lies outside [0, len(parent)),
//   - target has no parent and is not the source itself,
//   - the backward walk never reaches source — a disconnected or
//     inconsistent chain, e.g. a parent table corrupted by a negative
//     cycle. The walk is capped at len(parent) hops so a cyclic chain
//     terminates instead of spinning.
//
// Otherwise the returned slice runs from source to target inclusive.
// Complexity: O(path length).
func RestorePath(source, target int, parent []int) []int {
	n := len(parent)
	if target < 0 || target >= n {
		return nil
	}
	if parent[target] == NoParent && target != source {
		return nil
	}

	// Walk backward from target, collecting vertices in reverse order.
	rev := make([]int, 0, n)
	v := target
	for steps := 0; v != NoParent; steps++ {
		if steps >= n {
			return nil // cyclic parent chain; no finite path exists
		}
		rev = append(rev, v)
		if v == source {
			break
		}
		next := parent[v]
		if next != NoParent && (next < 0 || next >= n) {
			return nil // malformed table
		}
		v = next
	}

	if len(rev) == 0 || rev[len(rev)-1] != source {
		return nil
	}

	// Reverse in place: rev currently runs target → source.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
