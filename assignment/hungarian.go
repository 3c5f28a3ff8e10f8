package assignment

import "math"

// hungarianAssign solves the square n x n minimum-cost assignment
// problem and returns assign where assign[j] is the source row matched
// to target column j. It is a direct float64 translation of the
// shortest-augmenting-path Hungarian algorithm: each outer iteration
// grows a partial matching by one source, searching for the
// minimum-slack path to an unmatched target and tightening dual source
// and target potentials along the way until one is found.
func hungarianAssign(costs [][]float64) []int {
	n := len(costs)

	sourceCost := make([]float64, n+1)
	targetCost := make([]float64, n+1)
	targetSource := make([]int, n+1)
	for i := 0; i <= n; i++ {
		targetSource[i] = n
	}

	minSlack := make([]float64, n+1)
	targetTrail := make([]int, n+1)
	visitedTarget := make([]bool, n+1)

	for i := 0; i < n; i++ {
		targetSource[n] = i
		currentTarget := n

		for j := 0; j <= n; j++ {
			minSlack[j] = math.Inf(1)
			targetTrail[j] = n
			visitedTarget[j] = false
		}

		for targetSource[currentTarget] != n {
			visitedTarget[currentTarget] = true
			currentSource := targetSource[currentTarget]
			delta := math.Inf(1)
			nextTarget := 0

			for j := 0; j < n; j++ {
				if visitedTarget[j] {
					continue
				}
				slack := costs[currentSource][j] - sourceCost[currentSource] - targetCost[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					targetTrail[j] = currentTarget
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					nextTarget = j
				}
			}

			for j := 0; j <= n; j++ {
				if visitedTarget[j] {
					src := targetSource[j]
					sourceCost[src] += delta
					targetCost[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}

			currentTarget = nextTarget
		}

		for currentTarget != n {
			previousTarget := targetTrail[currentTarget]
			targetSource[currentTarget] = targetSource[previousTarget]
			currentTarget = previousTarget
		}
	}

	return append([]int(nil), targetSource[:n]...)
}
