// Package product enumerates cartesian products of ordered groups.
package product

// Cartesian returns every tuple that picks one element from each group.
// Tuples are ordered lexicographically by group position: the first group
// varies slowest and the last group fastest. An empty group yields no
// tuples; no groups yields no tuples.
func Cartesian[T any](groups [][]T) [][]T {
	if len(groups) == 0 {
		return nil
	}
	total := 1
	for _, g := range groups {
		if len(g) == 0 {
			return nil
		}
		total *= len(g)
	}
	out := make([][]T, 0, total)
	idx := make([]int, len(groups))
	for {
		tuple := make([]T, len(groups))
		for i, g := range groups {
			tuple[i] = g[idx[i]]
		}
		out = append(out, tuple)

		// odometer increment, rightmost group first
		i := len(groups) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(groups[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}
