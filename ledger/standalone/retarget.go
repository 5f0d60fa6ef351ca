// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// rbits is the number of bits of precision used by the fixed-point
	// arithmetic in the retarget calculation.
	rbits = 16

	// radix is the fixed-point scaling factor implied by rbits.
	radix = 1 << rbits

	// MinCoinbaseTarget is the lowest coinbase target allowed by consensus.
	// The floor prevents the network from ever becoming trivially easy.  It
	// is the value 2^10 - 1.
	MinCoinbaseTarget uint64 = 1<<10 - 1
)

// bigMaxUint64 is the maximum value a uint64 can represent as a big.Int.  It
// is defined here to avoid the overhead of creating it multiple times.
var bigMaxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// panicf is a convenience function that formats according to the given format
// specifier and arguments and then panics with it.
func panicf(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	panic(str)
}

// saturatingSub returns x - y with the result clamped to the range of an
// int64 instead of wrapping around on overflow.
func saturatingSub(x, y int64) int64 {
	result := x - y
	if x >= 0 && y < 0 && result < x {
		return math.MaxInt64
	}
	if x < 0 && y > 0 && result > x {
		return math.MinInt64
	}
	return result
}

// retarget calculates a new value from the previous value scaled exponentially
// by how far the observed block interval drifted from the anchor time.  It is
// the shared kernel behind both the coinbase target adjustment and the
// coinbase reward decay.
//
// The algorithm is an absolutely scheduled exponentially rising target (ASERT)
// calculation:
//
//	nextValue = previousValue * 2^(INV * (D - B) / N)
//
//	D   = Observed time elapsed since the previous block.
//	B   = Anchor time (expected seconds per block).
//	N   = Number of blocks per epoch.
//	INV = -1 when isInverse is set, 1 otherwise.
//
// In order to avoid floating point math, which is problematic across platforms
// due to uncertainty in floating point math libs, the formula is implemented
// using purely fixed-point integer arithmetic along with a cubic polynomial
// approximation to the 2^x term:
//
//	2^x ~= 1 + 0.695502049*x + 0.2262698*x^2 + 0.0782318*x^3
//
// The approximation is only valid over the interval [0,1), so the exponent is
// decomposed into an integer part, n, and a fractional part, f, such that f is
// in the required range.  By exponent rules 2^(n + f) = 2^n * 2^f, so the
// polynomial is applied to the fractional part and multiplying by 2^n reduces
// to an arithmetic shift by n.
//
// The exponent is calculated using 64.16 fixed point.  Since the fractional
// part is cubed in the polynomial and (2^16)^3 = 2^48, the polynomial addition
// is internally performed in 16.48 fixed point:
//
//	               195766423245049*f + 971821376*f^2 + 5127*f^3 + 2^47
//	2^f ~= 2^16 + ---------------------------------------------------
//	                                       2^48
//
// The integer polynomial coefficients are consensus constants shared with
// every deployed network and must not be altered.
//
// The result is floored at 1 when shifting down and saturated to the maximum
// value a uint64 can represent when shifting up overflows.  A value of zero is
// never returned since a zero target would be unsatisfiable and a zero reward
// is handled by the caller before invoking this function.
func retarget(previousValue uint64, prevTimestamp, timestamp, anchorTime int64, blocksPerEpoch uint32, isInverse bool) uint64 {
	// Determine the block time elapsed (in seconds) since the previous block.
	// The subtraction saturates rather than wrapping and the result is clamped
	// to a minimum of one second to tolerate a repeat timestamp.
	elapsed := saturatingSub(timestamp, prevTimestamp)
	if elapsed < 1 {
		elapsed = 1
	}

	// The drift is the signed difference between the observed and anchored
	// block intervals.  Note this must be standard subtraction to account for
	// faster than scheduled blocks.  No adjustment is needed when the block
	// arrived exactly on schedule.
	drift := elapsed - anchorTime
	if drift == 0 {
		return previousValue
	}

	// Negate the drift when the inverse flag is set so slower blocks decrease
	// the result and faster blocks increase it.
	if isInverse {
		drift = -drift
	}

	// Calculate the exponent using 64.16 fixed point with truncated division
	// and decompose it into integer and fractional parts:
	//
	//       2^16 * drift   drift << 16
	//   x = ------------ = -----------
	//             N             N
	//
	//   n = x >> 16
	//
	//   f = x - (n << 16)
	//
	// The arithmetic right shift rounds the integer part toward negative
	// infinity which guarantees the fractional part is in [0, 2^16).
	//
	// NOTE: The division uses Quo because it must be truncated division as
	// opposed to the Euclidean division that Div implements.
	exponent := big.NewInt(drift)
	exponent.Lsh(exponent, rbits)
	exponent.Quo(exponent, big.NewInt(int64(blocksPerEpoch)))
	integral := new(big.Int).Rsh(exponent, rbits)
	fractional := new(big.Int).Lsh(integral, rbits)
	fractional.Sub(exponent, fractional)
	frac := fractional.Uint64()

	// Calculate 2^16 * 2^(fractional part) of the exponent via the cubic
	// polynomial approximation.
	//
	// Note that a full unsigned 64-bit type is required to avoid overflow in
	// the internal 16.48 fixed point calculation and the overall result is a
	// maximum of 17 bits.
	const (
		polyCoeff1 uint64 = 195766423245049 // ceil(0.695502049712533 * 2^48)
		polyCoeff2 uint64 = 971821376       // ceil(0.2262697964 * 2^32)
		polyCoeff3 uint64 = 5127            // ceil(0.0782318 * 2^16)
	)
	fracMultiplier := radix + (polyCoeff1*frac+
		polyCoeff2*frac*frac+
		polyCoeff3*frac*frac*frac+
		1<<(3*rbits-1))>>(3*rbits)

	// Multiply the previous value by the fractional multiplier.  The product
	// requires up to 128 bits, so the remainder of the calculation is
	// performed with arbitrary precision integers and validated before being
	// narrowed back to a uint64.
	candidate := new(big.Int).SetUint64(previousValue)
	candidate.Mul(candidate, new(big.Int).SetUint64(fracMultiplier))

	// Apply the integer part of the exponent.  By exponent rules
	// 2^n / 2^16 = 2^(n - 16), so the multiplication by 2^n and the division
	// by the radix reduce to a single shift.
	//
	// Shifting down floors the result at 1, including when the shift amount
	// is too large to be applied to a 128-bit value.  Shifting up saturates
	// to the maximum uint64 value when the shift amount or the shifted result
	// exceeds 128 bits.
	shifts := integral.Sub(integral, big.NewInt(rbits))
	if shifts.Sign() < 0 {
		shiftAmt := shifts.Neg(shifts)
		if !shiftAmt.IsUint64() || shiftAmt.Uint64() >= 128 {
			return 1
		}
		candidate.Rsh(candidate, uint(shiftAmt.Uint64()))
		if candidate.Sign() == 0 {
			return 1
		}
	} else {
		if !shifts.IsUint64() || shifts.Uint64() >= 128 {
			return math.MaxUint64
		}
		candidate.Lsh(candidate, uint(shifts.Uint64()))
		if candidate.BitLen() > 128 {
			return math.MaxUint64
		}
		if candidate.Sign() == 0 {
			return 1
		}
	}

	// Cap the candidate at the maximum value a 64-bit target can represent.
	if candidate.Cmp(bigMaxUint64) > 0 {
		candidate.Set(bigMaxUint64)
	}

	// The capped candidate must fit into 64 bits.  This can only fail when
	// the shift and overflow handling above is broken, so it is an
	// implementation bug rather than a condition callers need to handle.
	if candidate.BitLen() > 64 {
		panicf("retargeted value %x exceeds 64 bits", candidate)
	}
	return candidate.Uint64()
}

// CalcCoinbaseTarget calculates the coinbase target for a block given the
// coinbase target of the previous block, the timestamps of both blocks, and
// the anchor time and number of blocks per epoch for the network.
//
// A block interval longer than the anchor time (slower blocks) decreases the
// target, making the next block easier to produce, while a shorter interval
// increases it.  The result never falls below MinCoinbaseTarget.
//
// The anchor time and number of blocks per epoch must both be positive values
// or the function will panic.  They are network constants that are expected to
// be validated at startup, so violating that is an unrecoverable
// misconfiguration rather than a per-block error.
//
// This function is safe for concurrent access.
func CalcCoinbaseTarget(prevTarget uint64, prevTimestamp, timestamp, anchorTime int64, blocksPerEpoch uint32) uint64 {
	if anchorTime <= 0 {
		panicf("anchor time %d is not a positive number of seconds", anchorTime)
	}
	if blocksPerEpoch == 0 {
		panicf("number of blocks per epoch must be a positive value")
	}

	candidate := retarget(prevTarget, prevTimestamp, timestamp, anchorTime,
		blocksPerEpoch, true)
	if candidate < MinCoinbaseTarget {
		return MinCoinbaseTarget
	}
	return candidate
}

// CalcProofTarget calculates the minimum proof target for the given coinbase
// target.  The proof target is a coarser threshold used for the secondary
// proof-difficulty check and is derived by shifting the coinbase target down
// by 10 bits.
//
// This function is safe for concurrent access.
func CalcProofTarget(coinbaseTarget uint64) uint64 {
	return coinbaseTarget >> 10
}
