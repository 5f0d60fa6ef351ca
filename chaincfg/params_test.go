// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/Budalebah/snarkd/ledger/standalone"
)

// Ensure network parameters satisfy the reward parameters interface required
// by the consensus calculations.
var _ standalone.RewardParams = (*Params)(nil)

// allParams returns the parameters for every defined network.
func allParams() []*Params {
	return []*Params{MainNetParams(), TestNet3Params(), SimNetParams()}
}

// TestParamsSanity ensures the parameters for every defined network are
// internally consistent and accepted by the consensus reward calculations.
func TestParamsSanity(t *testing.T) {
	seenNames := make(map[string]struct{})
	seenNets := make(map[NetworkID]struct{})
	for _, params := range allParams() {
		// Network names and numeric identifiers must be unique.
		if _, ok := seenNames[params.Name]; ok {
			t.Errorf("%s: duplicate network name", params.Name)
		}
		seenNames[params.Name] = struct{}{}
		if _, ok := seenNets[params.Net]; ok {
			t.Errorf("%s: duplicate network id %d", params.Name, params.Net)
		}
		seenNets[params.Net] = struct{}{}

		// The name must match the identifier's human-readable form.
		if params.Net.String() != params.Name {
			t.Errorf("%s: network id stringizes to %q", params.Name,
				params.Net.String())
		}

		// The anchor time must be a positive whole number of seconds since
		// the consensus calculations operate on second granularity.
		if params.AnchorTime <= 0 {
			t.Errorf("%s: anchor time %v is not positive", params.Name,
				params.AnchorTime)
		}
		if params.AnchorTime%time.Second != 0 {
			t.Errorf("%s: anchor time %v is not a whole number of seconds",
				params.Name, params.AnchorTime)
		}

		// The genesis coinbase target must be at least the consensus floor.
		if params.GenesisCoinbaseTarget < standalone.MinCoinbaseTarget {
			t.Errorf("%s: genesis coinbase target %d is below the consensus "+
				"floor %d", params.Name, params.GenesisCoinbaseTarget,
				standalone.MinCoinbaseTarget)
		}

		// The constants must be accepted by the reward calculator since it
		// performs the construction-time consensus validation.
		if _, err := standalone.NewRewardCalculator(params); err != nil {
			t.Errorf("%s: constants rejected by the reward calculator: %v",
				params.Name, err)
		}
	}
}

// TestMainNetEconomics ensures the main network constants produce the
// documented staking and anchor rewards.
func TestMainNetEconomics(t *testing.T) {
	calc, err := standalone.NewRewardCalculator(MainNetParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stakingReward, err := calc.StakingReward()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stakingReward != 17440385 {
		t.Errorf("unexpected staking reward -- got %d, want 17440385",
			stakingReward)
	}

	anchorReward, err := calc.AnchorReward()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anchorReward != 8 {
		t.Errorf("unexpected anchor reward -- got %d, want 8", anchorReward)
	}
}

// TestNetworkIDStringer tests the stringized output for the NetworkID type.
func TestNetworkIDStringer(t *testing.T) {
	tests := []struct {
		in   NetworkID
		want string
	}{
		{MainNet, "mainnet"},
		{TestNet3, "testnet3"},
		{SimNet, "simnet"},
		{0xffff, "unknown network (65535)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}
