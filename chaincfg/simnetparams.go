// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "time"

// SimNetParams returns the network parameters for the simulation test
// network.  This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.  The functionality is intended to differ in that the only nodes
// which are specifically specified are used to create the network rather than
// following normal discovery rules.  This is important as otherwise it would
// just turn into another public testnet.
func SimNetParams() *Params {
	return &Params{
		Name: "simnet",
		Net:  SimNet,

		// The small constants make hand-verified calculations tractable: a
		// genesis coinbase target of 1024 halves to the 1023 floor when a
		// block takes twice the anchor time and rises to 1448 when a block
		// takes half of it.
		StartingSupply: 10000000000000000,
		AnchorTime:     10 * time.Second,
		BlocksPerEpoch: 10,

		GenesisTimestamp:      time.Unix(1401292357, 0), // Wed, 28 May 2014 15:52:37 GMT
		GenesisCoinbaseTarget: 1 << 10,
	}
}
