// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

// secondsPerYear is the number of seconds in a calendar year of 365 days.
const secondsPerYear = 60 * 60 * 24 * 365

// EstimatedBlockHeight returns the estimated block height after the given
// number of years for a network that produces one block per anchor time
// seconds on average.
//
// The anchor time must be a positive number of seconds or the function will
// panic.  It is a network constant that is expected to be validated at
// startup, so violating that is an unrecoverable misconfiguration.
//
// This function is safe for concurrent access.
func EstimatedBlockHeight(anchorTime uint64, numYears uint32) uint64 {
	if anchorTime == 0 {
		panicf("anchor time must be a positive number of seconds")
	}

	// Calculate the estimated number of blocks produced in a year.
	estimatedBlocksPerYear := secondsPerYear / anchorTime

	return estimatedBlocksPerYear * uint64(numYears)
}
