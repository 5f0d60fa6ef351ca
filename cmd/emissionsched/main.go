// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// emissionsched evaluates the emission and difficulty-retarget schedule of a
// snarkd network by replaying the consensus reward and target calculations
// over a simulated block cadence.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Budalebah/snarkd/chaincfg"
	"github.com/Budalebah/snarkd/internal/progresslog"
	"github.com/Budalebah/snarkd/ledger/standalone"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type config struct {
	TestNet    bool   `long:"testnet" description:"Evaluate the test network"`
	SimNet     bool   `long:"simnet" description:"Evaluate the simulation test network"`
	Blocks     uint64 `short:"n" long:"blocks" description:"Number of blocks to evaluate"`
	BlockTime  int64  `short:"t" long:"blocktime" description:"Simulated seconds between blocks (default: the network anchor time)"`
	Every      uint64 `short:"e" long:"every" description:"Print every Nth schedule row"`
	LogFile    string `long:"logfile" description:"Also write logs to the provided file with rotation"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// chainParams returns the network parameters selected by the provided
// configuration.
func chainParams(cfg *config) (*chaincfg.Params, error) {
	if cfg.TestNet && cfg.SimNet {
		return nil, errors.New("the testnet and simnet params can't be used " +
			"together -- choose one of the two")
	}
	switch {
	case cfg.TestNet:
		return chaincfg.TestNet3Params(), nil
	case cfg.SimNet:
		return chaincfg.SimNetParams(), nil
	}
	return chaincfg.MainNetParams(), nil
}

func realMain() error {
	cfg := config{
		Blocks:     100,
		Every:      10,
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if !setLogLevel(cfg.DebugLevel) {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer logRotator.Close()
	}
	if cfg.Every == 0 {
		return errors.New("the schedule row interval must be a positive value")
	}

	params, err := chainParams(&cfg)
	if err != nil {
		return err
	}
	anchorTime := params.AnchorTimeSecs()
	blockTime := cfg.BlockTime
	if blockTime == 0 {
		blockTime = anchorTime
	}
	if blockTime < 1 {
		return fmt.Errorf("simulated block time of %d seconds is not a "+
			"positive value", blockTime)
	}

	// The calculator construction performs the consensus validation of the
	// network constants, so a failure here means the parameters themselves
	// are broken.
	calc, err := standalone.NewRewardCalculator(params)
	if err != nil {
		return fmt.Errorf("invalid %s network constants: %w", params.Name, err)
	}

	stakingReward, err := calc.StakingReward()
	if err != nil {
		return err
	}
	anchorReward, err := calc.AnchorReward()
	if err != nil {
		return err
	}
	log.Infof("Evaluating %d blocks on %s (anchor time %v, %d blocks/epoch, "+
		"simulated block time %ds)", cfg.Blocks, params.Name,
		params.AnchorTime, params.BlocksPerEpoch, blockTime)
	log.Infof("Staking reward: %d microunits", stakingReward)
	log.Infof("Anchor reward: %d microunits", anchorReward)

	// Replay the schedule from genesis.  The coinbase target evolves from
	// the genesis target block by block while the reward depends only on the
	// height and the interval of each individual block.
	progress := progresslog.New("Evaluated", prgLog)
	fmt.Println("height,timestamp,coinbase_reward,coinbase_target,proof_target")
	prevTimestamp := params.GenesisTimestamp.Unix()
	coinbaseTarget := params.GenesisCoinbaseTarget
	for height := uint64(1); height <= cfg.Blocks; height++ {
		timestamp := prevTimestamp + blockTime

		reward, err := calc.CoinbaseReward(prevTimestamp, timestamp, height)
		if err != nil {
			return fmt.Errorf("height %d: %w", height, err)
		}
		coinbaseTarget = standalone.CalcCoinbaseTarget(coinbaseTarget,
			prevTimestamp, timestamp, anchorTime, params.BlocksPerEpoch)
		proofTarget := standalone.CalcProofTarget(coinbaseTarget)

		if height%cfg.Every == 0 || height == cfg.Blocks {
			fmt.Printf("%d,%d,%d,%d,%d\n", height, timestamp, reward,
				coinbaseTarget, proofTarget)
		}
		progress.LogProgress(height, reward, coinbaseTarget,
			height == cfg.Blocks)

		prevTimestamp = timestamp
	}

	return nil
}

func main() {
	if err := realMain(); err != nil {
		fatalf("%v", err)
	}
}
