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

	"github.com/hrtools/bamboosync/cmd/bamboosync/opts"
	"github.com/hrtools/bamboosync/pkg/config"
	"github.com/hrtools/bamboosync/pkg/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.json, .yaml, .hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// newRootOpts initializes shared dependencies once flags are parsed
func newRootOpts(cmd *cobra.Command) (*opts.RootOpts, context.Context, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	ctx := logger.WithContext(cmd.Context())

	settings := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, nil, errors.Errorf("loading config: %w", err)
		}
		settings = loaded
	}

	return &opts.RootOpts{
		Settings: settings,
		Reporter: log.New(os.Stderr, level),
	}, ctx, nil
}
