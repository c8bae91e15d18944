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

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hrtools/bamboosync/cmd/bamboosync/opts"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔌 LoadFunc builds the shared dependencies after flag parsing
type LoadFunc func(cmd *cobra.Command) (*opts.RootOpts, context.Context, error)

// NewSyncCmd creates the sync command
func NewSyncCmd(load LoadFunc) *cobra.Command {
	var (
		startStr string
		endStr   string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a sync and write document batches as NDJSON",
		Long: `Sync streams employees, files, and time-off records from the
configured BambooHR tenant as batches of canonical documents. Each
document is written as one NDJSON line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, ctx, err := load(cmd)
			if err != nil {
				return err
			}

			start, err := parseTimeFlag(startStr)
			if err != nil {
				return errors.Errorf("parsing --start: %w", err)
			}
			end, err := parseTimeFlag(endStr)
			if err != nil {
				return errors.Errorf("parsing --end: %w", err)
			}

			syncer, err := o.NewSyncer()
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return errors.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			o.Reporter.Header("syncing documents")

			batches, err := syncer.Poll(ctx, start, end)
			if err != nil {
				return errors.Errorf("starting sync: %w", err)
			}

			encoder := json.NewEncoder(out)
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				for batch := range batches {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					for _, doc := range batch {
						if err := encoder.Encode(doc); err != nil {
							return errors.Errorf("encoding document: %w", err)
						}
					}
					o.Reporter.LogBatch(len(batch))
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				o.Reporter.Errorf("sync failed: %v", err)
				return err
			}

			batchCount, docCount := o.Reporter.Totals()
			o.Reporter.Successf("emitted %d document(s) in %d batch(es)", docCount, batchCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "window start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "window end (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

// parseTimeFlag parses an optional window boundary flag
func parseTimeFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized time %q", s)
}
