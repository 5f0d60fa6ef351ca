// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main snarkd network, which is intended for the transfer
// of value, there is an active test network and a simulation network.  The
// simulation network is convenient for testing applications locally since its
// small constants make hand-verifiable reward and target calculations
// possible.
//
// The network parameters are immutable for the lifetime of a network.
// Changing any of them changes the consensus rules and effectively defines a
// new network, so applications must never mutate a Params instance after it
// has been put to use.
//
// For library packages, chaincfg provides the reward and retarget constants
// the ledger/standalone package consumes.  For main packages, a subset of the
// networks is typically exposed through application flags with the main
// network used by default.
package chaincfg
