package slam

// RMHCPositionSearch performs Random-Mutation Hill-Climbing local search
// for the pose, around startPose, that best explains distanceScan against
// m. It evaluates at most maxIter candidates and always returns a pose at
// least as good as startPose (the search never adopts a worse candidate).
//
// Iterations are conceptually paired, numbered from 1: a proposal that
// fails to improve on the best-so-far leaves the mutation base (lastBest)
// alone on an odd iteration, but resets it back to the current best on an
// even one. This periodic re-centering keeps the random walk from
// drifting away from the best pose found so far while still letting a
// short run of misses explore a little further before being pulled back.
//
// If distanceScan contributes zero valid beams, DistanceScanToMap returns
// -1 for every candidate including startPose, so the "c >= 0 && c <
// bestCost" acceptance test never passes and the search returns startPose
// unchanged — a degenerate scan is handled without a special case here.
func RMHCPositionSearch(startPose Pose, m *Map, distanceScan *Scan, sigmaXYMM, sigmaThetaDeg float64, maxIter int, prng *PRNG) Pose {
	best := startPose
	bestCost := DistanceScanToMap(m, distanceScan, best)
	lastBest := best

	for iter := 0; iter < maxIter; iter++ {
		candidate := Pose{
			XMM:      lastBest.XMM + sigmaXYMM*prng.Normal(),
			YMM:      lastBest.YMM + sigmaXYMM*prng.Normal(),
			ThetaDeg: lastBest.ThetaDeg + sigmaThetaDeg*prng.Normal(),
		}

		c := DistanceScanToMap(m, distanceScan, candidate)
		if c >= 0 && c < bestCost {
			best = candidate
			bestCost = c
			lastBest = candidate
			continue
		}

		// iter is 0-indexed, so the spec's 1-indexed "odd iteration" (keep)
		// is iter%2 == 0 and "even iteration" (reset) is iter%2 == 1.
		if iter%2 == 1 {
			lastBest = best
		}
	}

	return best
}
