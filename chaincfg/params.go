// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// NetworkID defines the numeric identifier used throughout the snarkd
// ecosystem to differentiate one network from another.  It is embedded into
// addresses, transactions, and proofs, so records intended for one network
// fail validation on every other network.
type NetworkID uint16

// Constants used to indicate the network.
const (
	// MainNet represents the main network.
	MainNet NetworkID = 0

	// TestNet3 represents the current iteration of the test network.
	TestNet3 NetworkID = 3

	// SimNet represents the simulation network.
	SimNet NetworkID = 100
)

// String returns the NetworkID in human-readable form.
func (n NetworkID) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet3:
		return "testnet3"
	case SimNet:
		return "simnet"
	}
	return fmt.Sprintf("unknown network (%d)", uint16(n))
}

// Params defines a snarkd network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as to drive the
// consensus-critical reward and difficulty-retarget calculations in the
// ledger/standalone package.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the numeric identifier for the network.
	Net NetworkID

	// StartingSupply is the number of microunits of the native token in
	// circulation at genesis.  Together with the anchor time it determines
	// the staking and anchor rewards.
	StartingSupply uint64

	// AnchorTime is the desired amount of time between blocks under ideal
	// network conditions.  It must be a positive whole number of seconds no
	// greater than one year.
	AnchorTime time.Duration

	// BlocksPerEpoch is the number of blocks in an epoch.  It normalizes the
	// per-epoch decay and growth rate of the exponential retarget algorithm
	// and must be a positive value.
	BlocksPerEpoch uint32

	// GenesisTimestamp is the timestamp of the genesis block.  The retarget
	// schedule for every subsequent block is anchored to it.
	GenesisTimestamp time.Time

	// GenesisCoinbaseTarget is the coinbase target of the genesis block and
	// therefore the starting point for all coinbase target calculations.
	GenesisCoinbaseTarget uint64
}

// StartingSupplyValue returns the number of microunits of the native token in
// circulation at genesis.
//
// This function is part of the standalone.RewardParams interface.
func (p *Params) StartingSupplyValue() uint64 {
	return p.StartingSupply
}

// AnchorTimeSecs returns the expected number of whole seconds between
// consecutive blocks under ideal network conditions.
//
// This function is part of the standalone.RewardParams interface.
func (p *Params) AnchorTimeSecs() int64 {
	return int64(p.AnchorTime / time.Second)
}

// NumBlocksPerEpoch returns the number of blocks in an epoch.
//
// This function is part of the standalone.RewardParams interface.
func (p *Params) NumBlocksPerEpoch() uint32 {
	return p.BlocksPerEpoch
}
