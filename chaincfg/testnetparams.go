// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "time"

// TestNet3Params returns the network parameters for the test network (version
// 3).  Not to be confused with the simulation network, this network is
// sometimes simply called "testnet".
func TestNet3Params() *Params {
	return &Params{
		Name: "testnet3",
		Net:  TestNet3,

		// The test network shares the main network economics so reward and
		// retarget behavior observed on it carries over directly.
		StartingSupply: 1100000000000000,
		AnchorTime:     20 * time.Second,
		BlocksPerEpoch: 256,

		GenesisTimestamp:      time.Unix(1632884149, 0), // Wed, 29 Sep 2021 02:55:49 GMT
		GenesisCoinbaseTarget: 1 << 26,
	}
}
