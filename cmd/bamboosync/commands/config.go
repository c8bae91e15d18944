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
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd(load LoadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective filter and toggle configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, _, err := load(cmd)
			if err != nil {
				return err
			}

			settings := o.Settings.Map()

			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			rows := pterm.TableData{{"Setting", "Value"}}
			for _, key := range keys {
				rows = append(rows, []string{key, renderValue(settings[key])})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}

	return cmd
}

// renderValue flattens a settings value for table display
func renderValue(v any) string {
	switch t := v.(type) {
	case []string:
		if len(t) == 0 {
			return "(any)"
		}
		return strings.Join(t, ", ")
	case string:
		if t == "" {
			return "(unset)"
		}
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
