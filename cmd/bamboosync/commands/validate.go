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
	"github.com/hrtools/bamboosync/pkg/sync"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewValidateCmd creates the validate command
func NewValidateCmd(load LoadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check credentials and connector settings",
		Long: `Validate performs one lightweight authenticated request against the
configured tenant and reports credential or permission problems.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, ctx, err := load(cmd)
			if err != nil {
				return err
			}

			syncer, err := o.NewSyncer()
			if err != nil {
				return err
			}

			if err := syncer.ValidateSettings(ctx); err != nil {
				var credErr *sync.CredentialError
				var permErr *sync.PermissionError
				switch {
				case errors.As(err, &credErr):
					o.Reporter.Error("credentials are invalid or expired (HTTP 401)")
				case errors.As(err, &permErr):
					o.Reporter.Error("api key lacks sufficient permissions (HTTP 403)")
				default:
					o.Reporter.Errorf("validation failed: %v", err)
				}
				return err
			}

			o.Reporter.Success("settings are valid")
			return nil
		},
	}

	return cmd
}
