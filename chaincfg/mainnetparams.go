// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "time"

// MainNetParams returns the network parameters for the main snarkd network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  MainNet,

		// The starting supply is 1.1 quadrillion microunits (1.1 billion
		// whole tokens) and, with the 20 second anchor time, yields an
		// anchor reward of 8 and a staking reward of 17440385 microunits.
		StartingSupply: 1100000000000000,
		AnchorTime:     20 * time.Second,
		BlocksPerEpoch: 256,

		GenesisTimestamp:      time.Unix(1640179531, 0), // Wed, 22 Dec 2021 12:45:31 GMT
		GenesisCoinbaseTarget: 1 << 32,
	}
}
