// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"
	"math/big"
	"math/bits"
)

// RewardParams defines an interface that is used to provide the network
// constants required when calculating block rewards.  These values are
// well-defined and unique per network.
type RewardParams interface {
	// StartingSupplyValue returns the number of microunits of the native
	// token in circulation at genesis.
	StartingSupplyValue() uint64

	// AnchorTimeSecs returns the expected number of seconds between
	// consecutive blocks under ideal network conditions.
	AnchorTimeSecs() int64

	// NumBlocksPerEpoch returns the number of blocks in an epoch, which
	// normalizes the decay and growth rate of the retarget algorithm.
	NumBlocksPerEpoch() uint32
}

// RewardCalculator provides consensus-critical reward calculations for blocks
// given the constants of a network.  It computes the staking reward, the
// anchor reward, and the per-block coinbase reward.
//
// All methods are pure functions of the bound network constants and the
// explicit arguments, so a single instance is safe for concurrent access.
type RewardCalculator struct {
	startingSupply uint64
	anchorTime     int64
	blocksPerEpoch uint32

	// These fields house values derived from the network constants in order
	// to avoid repeated calculation.
	blockHeightYear1  uint64
	blockHeightYear10 uint64
}

// NewRewardCalculator creates and initializes a new reward calculator instance
// for the provided network constants.
//
// An error with kind ErrInvalidAnchorTime is returned when the anchor time is
// not a positive number of seconds or exceeds one year, and an error with kind
// ErrInvalidBlocksPerEpoch is returned when the number of blocks per epoch is
// zero.  Both indicate a misconfigured network and are expected to be treated
// as fatal at startup as opposed to handled per block.
func NewRewardCalculator(params RewardParams) (*RewardCalculator, error) {
	anchorTime := params.AnchorTimeSecs()
	if anchorTime <= 0 {
		str := fmt.Sprintf("anchor time of %d seconds is not a positive value",
			anchorTime)
		return nil, ruleError(ErrInvalidAnchorTime, str)
	}

	blocksPerEpoch := params.NumBlocksPerEpoch()
	if blocksPerEpoch == 0 {
		str := "number of blocks per epoch of 0 is not a positive value"
		return nil, ruleError(ErrInvalidBlocksPerEpoch, str)
	}

	// An anchor time in excess of one year implies an estimated block height
	// of zero at year one which would lead to a division by zero in the
	// staking reward calculation.
	heightYear1 := EstimatedBlockHeight(uint64(anchorTime), 1)
	if heightYear1 == 0 {
		str := fmt.Sprintf("anchor time of %d seconds implies fewer than one "+
			"block per year", anchorTime)
		return nil, ruleError(ErrInvalidAnchorTime, str)
	}

	return &RewardCalculator{
		startingSupply:    params.StartingSupplyValue(),
		anchorTime:        anchorTime,
		blocksPerEpoch:    blocksPerEpoch,
		blockHeightYear1:  heightYear1,
		blockHeightYear10: EstimatedBlockHeight(uint64(anchorTime), 10),
	}, nil
}

// narrowToUint64 narrows the provided arbitrary precision result of a reward
// calculation to a uint64 and returns an error with kind
// ErrArithmeticOverflow when the value would lose information.
func narrowToUint64(op string, n *big.Int) (uint64, error) {
	if !n.IsUint64() {
		str := fmt.Sprintf("%s of %v exceeds the maximum possible value", op, n)
		return 0, ruleError(ErrArithmeticOverflow, str)
	}
	return n.Uint64(), nil
}

// StakingReward returns the staking reward for the network:
//
//	R_staking = floor((0.025 * S) / H_Y1)
//
//	S    = Starting supply.
//	H_Y1 = Estimated block height at year 1.
//
// The calculation is performed exclusively with integers by expressing the
// 2.5% factor as a ratio of 25/1000 and truncating toward zero, with all
// intermediate products carried in more than 64 bits before the checked
// narrowing back to a uint64.
//
// This function is safe for concurrent access.
func (c *RewardCalculator) StakingReward() (uint64, error) {
	reward := new(big.Int).SetUint64(c.startingSupply)
	reward.Mul(reward, big.NewInt(25))
	reward.Quo(reward, big.NewInt(1000))
	reward.Quo(reward, new(big.Int).SetUint64(c.blockHeightYear1))
	return narrowToUint64("staking reward", reward)
}

// AnchorReward returns the anchor reward for the network:
//
//	R_anchor = floor((2 * S) / (H_Y10 * (H_Y10 + 1)))
//
//	S     = Starting supply.
//	H_Y10 = Estimated block height at year 10.
//
// The intermediate products exceed 64 bits for realistic network constants, so
// the calculation is carried in arbitrary precision before the checked
// narrowing back to a uint64.
//
// This function is safe for concurrent access.
func (c *RewardCalculator) AnchorReward() (uint64, error) {
	heightYear10 := new(big.Int).SetUint64(c.blockHeightYear10)
	denominator := new(big.Int).Add(heightYear10, big.NewInt(1))
	denominator.Mul(denominator, heightYear10)

	reward := new(big.Int).SetUint64(c.startingSupply)
	reward.Lsh(reward, 1)
	reward.Quo(reward, denominator)
	return narrowToUint64("anchor reward", reward)
}

// CoinbaseReward returns the coinbase reward for a block:
//
//	R_coinbase = max(0, H_Y10 - H) * R_anchor * 2^(-1 * (D - B) / N)
//
//	H_Y10 = Estimated block height at year 10.
//	H     = Block height.
//	D     = Observed time elapsed since the previous block.
//	B     = Anchor time (expected seconds per block).
//	N     = Number of blocks per epoch.
//
// The reward declines linearly with the block height and reaches zero at the
// estimated block height at year 10, after which it remains zero permanently.
// The exponential term decays the reward for blocks that arrive slower than
// the anchor time and grows it, bounded by the remaining anchor reward, for
// blocks that arrive faster.  It is computed by the same fixed-point retarget
// kernel the coinbase target uses so the two consensus-critical paths cannot
// diverge.
//
// An error with kind ErrArithmeticOverflow is returned when the product of
// the remaining block count and the anchor reward exceeds a uint64.  Callers
// must treat a block producing such an error as invalid.
//
// This function is safe for concurrent access.
func (c *RewardCalculator) CoinbaseReward(prevTimestamp, timestamp int64, blockHeight uint64) (uint64, error) {
	// Determine the number of blocks remaining until the estimated block
	// height at year 10.  Heights beyond it yield zero.
	var remainingBlocks uint64
	if blockHeight < c.blockHeightYear10 {
		remainingBlocks = c.blockHeightYear10 - blockHeight
	}

	anchorReward, err := c.AnchorReward()
	if err != nil {
		return 0, err
	}

	hi, reward := bits.Mul64(remainingBlocks, anchorReward)
	if hi != 0 {
		str := fmt.Sprintf("coinbase reward for %d remaining blocks with an "+
			"anchor reward of %d exceeds the maximum possible value",
			remainingBlocks, anchorReward)
		return 0, ruleError(ErrArithmeticOverflow, str)
	}

	// The post-year-10 cliff and a zero anchor reward both produce a zero
	// reward with no decay step.
	if reward == 0 {
		return 0, nil
	}

	return retarget(reward, prevTimestamp, timestamp, c.anchorTime,
		c.blocksPerEpoch, true), nil
}
