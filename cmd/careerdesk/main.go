// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/careerdesk/careerdesk/internal/cli"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := cli.Execute()
	_ = logger.CloseGlobal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
