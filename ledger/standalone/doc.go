// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package standalone provides standalone functions useful for working with the
snarkd ledger block-economics consensus rules.

The primary goal of offering these functions via a separate module is to reduce
the required dependencies to a minimum as compared to the rest of the ledger.

Every function in this package is a pure computation over its explicit
arguments.  There is no I/O, no persisted state, and no shared mutable state,
so all functions are safe for concurrent access without synchronization.
Repeated calls with identical inputs are guaranteed to produce identical
outputs, which block-header construction and validation rely on for
reproducible results across every node in the network.

# Function categories

The provided functions fall into the following categories:

  - Block height estimation
  - Reward calculation
  - Difficulty retargeting

# Block height estimation

  - Estimating the block height a network reaches after a given number of
    years for a specific anchor time

# Reward calculation

  - Staking reward for a network's constants
  - Anchor reward for a network's constants
  - Coinbase reward for a given block height and interval

# Difficulty retargeting

  - Calculating the coinbase target for a block from the previous target and
    the observed block interval
  - Deriving the proof target from a coinbase target

The coinbase target and the coinbase reward share a single fixed-point
exponential retargeting kernel so the two consensus-critical numeric paths
behave identically and are exercised together.

# Errors

Errors returned by this package are of type standalone.RuleError and have full
support for the standard library errors.Is and errors.As functions.  This
allows the caller to programmatically determine the specific reason for an
error by checking against the ErrorKind constants in this package.
*/
package standalone
