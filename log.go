// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import "go.uber.org/zap"

var log = zap.S()

// UpdateLogger replaces the package logger. The host application calls
// this once at startup to route engine logs into its own sink.
func UpdateLogger(logger *zap.Logger) {
	zap.ReplaceGlobals(logger)
	log = zap.S()
}
