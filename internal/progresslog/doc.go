// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for block schedule evaluation.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals about evaluated blocks between each logging
  interval
  - Total number of blocks
  - Total coinbase rewards credited
- Logs all cumulative data every 10 seconds along with the most recent
  height and coinbase target
- Immediately logs any outstanding data when a log is forced
*/
package progresslog
