// Copyright 2025 hrtools LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/hrtools/bamboosync/cmd/bamboosync/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Credentials may live in a local .env file
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bamboosync",
		Short: "Sync BambooHR data into indexable documents",
		Long: `bamboosync incrementally extracts employees, files, and time-off
records from a BambooHR tenant and normalizes them into canonical
documents emitted as bounded batches.

Credentials are read from BAMBOOHR_SUBDOMAIN and BAMBOOHR_API_KEY.`,
	}

	addRootFlags(rootCmd)

	ctx := context.Background()
	rootCmd.AddCommand(
		commands.NewSyncCmd(newRootOpts),
		commands.NewValidateCmd(newRootOpts),
		commands.NewConfigCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
