// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards some action such as
// evaluating the emission schedule of a network.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about blocks between log
	// statements.
	evaluatedBlocks uint64
	creditedRewards uint64
	lastHeight      uint64
	lastTarget      uint64
}

// New returns a new block progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates details for the provided block and periodically
// (every 10 seconds) logs an information message to show progress to the user
// along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//
//	{progressAction} {numEvaluated} {blocks|block} in the last {timePeriod}
//	({totalRewards} microunits, height {lastHeight}, coinbase target
//	{lastTarget})
//
// This function is safe for concurrent access.
func (l *Logger) LogProgress(height, coinbaseReward, coinbaseTarget uint64, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.evaluatedBlocks++
	l.creditedRewards += coinbaseReward
	l.lastHeight = height
	l.lastTarget = coinbaseTarget
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < time.Second*10 {
		return
	}

	// Log information about schedule progress.
	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d microunits, "+
		"height %d, coinbase target %d)", l.progressAction, l.evaluatedBlocks,
		pickNoun(l.evaluatedBlocks, "block", "blocks"), duration.Seconds(),
		l.creditedRewards, l.lastHeight, l.lastTarget)

	l.evaluatedBlocks = 0
	l.creditedRewards = 0
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
