// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Command tracefilter validates trace filtering directives.
package main

import (
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cmd := newCommand(logger)
	if err := cmd.Execute(); err != nil {
		logger.Error("invalid filter configuration", zap.Error(err))
		os.Exit(1)
	}
}
