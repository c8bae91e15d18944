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

package config

import (
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🎚️ Indexing scopes
const (
	ScopeEverything = "everything" // index all records, ignore filters
	ScopeFiltered   = "filtered"   // apply the configured allow-lists and cutoffs
)

// ⚙️ Defaults
const (
	DefaultBatchSize = 100
	dateLayout       = "2006-01-02"
)

// 📚 Settings is the complete connector configuration
type Settings struct {
	BatchSize           int      `json:"batch_size,omitempty" yaml:"batch_size,omitempty" hcl:"batch_size,optional"`
	Departments         []string `json:"departments,omitempty" yaml:"departments,omitempty" hcl:"departments,optional"`
	JobTitles           []string `json:"job_titles,omitempty" yaml:"job_titles,omitempty" hcl:"job_titles,optional"`
	EmploymentStatus    []string `json:"employment_status,omitempty" yaml:"employment_status,omitempty" hcl:"employment_status,optional"`
	FileCategories      []string `json:"file_categories,omitempty" yaml:"file_categories,omitempty" hcl:"file_categories,optional"`
	TimeOffTypes        []string `json:"time_off_types,omitempty" yaml:"time_off_types,omitempty" hcl:"time_off_types,optional"`
	IncludeFiles        *bool    `json:"include_files,omitempty" yaml:"include_files,omitempty" hcl:"include_files,optional"`
	IncludeTimeOff      *bool    `json:"include_time_off,omitempty" yaml:"include_time_off,omitempty" hcl:"include_time_off,optional"`
	HireDateAfter       string   `json:"hire_date_after,omitempty" yaml:"hire_date_after,omitempty" hcl:"hire_date_after,optional"`
	UpdatedSince        string   `json:"updated_since,omitempty" yaml:"updated_since,omitempty" hcl:"updated_since,optional"`
	IndexingScope       string   `json:"indexing_scope,omitempty" yaml:"indexing_scope,omitempty" hcl:"indexing_scope,optional"`
	ExcludeFilePatterns []string `json:"exclude_file_patterns,omitempty" yaml:"exclude_file_patterns,omitempty" hcl:"exclude_file_patterns,optional"`

	location string // path the settings were loaded from
}

// 🏭 Default returns settings with all defaults applied
func Default() *Settings {
	cfg := &Settings{}
	if err := cfg.Validate(); err != nil {
		panic(err) // defaults always validate
	}
	return cfg
}

// 🔍 Validate checks the settings and applies defaults
func (cfg *Settings) Validate() error {
	if cfg.BatchSize < 0 {
		return errors.Errorf("batch_size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	if cfg.IndexingScope == "" {
		cfg.IndexingScope = ScopeEverything
	}
	if cfg.IndexingScope != ScopeEverything && cfg.IndexingScope != ScopeFiltered {
		return errors.Errorf("indexing_scope must be %q or %q, got %q", ScopeEverything, ScopeFiltered, cfg.IndexingScope)
	}

	// Toggles default to on
	if cfg.IncludeFiles == nil {
		cfg.IncludeFiles = boolPtr(true)
	}
	if cfg.IncludeTimeOff == nil {
		cfg.IncludeTimeOff = boolPtr(true)
	}

	// Cutoffs are ISO dates
	if cfg.HireDateAfter != "" {
		if _, err := time.Parse(dateLayout, cfg.HireDateAfter); err != nil {
			return errors.Errorf("hire_date_after must be YYYY-MM-DD: %w", err)
		}
	}
	if cfg.UpdatedSince != "" {
		if _, err := time.Parse(dateLayout, cfg.UpdatedSince); err != nil {
			return errors.Errorf("updated_since must be YYYY-MM-DD: %w", err)
		}
	}

	for _, pattern := range cfg.ExcludeFilePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude_file_patterns entry %q", pattern)
		}
	}

	return nil
}

// 📂 FilesEnabled reports whether file indexing is on
func (cfg *Settings) FilesEnabled() bool {
	return cfg.IncludeFiles != nil && *cfg.IncludeFiles
}

// 🏖️ TimeOffEnabled reports whether time-off indexing is on
func (cfg *Settings) TimeOffEnabled() bool {
	return cfg.IncludeTimeOff != nil && *cfg.IncludeTimeOff
}

// 📍 Location returns the path the settings were loaded from, if any
func (cfg *Settings) Location() string {
	return cfg.location
}

// 📝 Map returns the filter and toggle configuration as a plain mapping,
// for display purposes
func (cfg *Settings) Map() map[string]any {
	return map[string]any{
		"indexing_scope":        cfg.IndexingScope,
		"departments":           cfg.Departments,
		"job_titles":            cfg.JobTitles,
		"employment_status":     cfg.EmploymentStatus,
		"file_categories":       cfg.FileCategories,
		"time_off_types":        cfg.TimeOffTypes,
		"include_files":         cfg.FilesEnabled(),
		"include_time_off":      cfg.TimeOffEnabled(),
		"hire_date_after":       cfg.HireDateAfter,
		"updated_since":         cfg.UpdatedSince,
		"exclude_file_patterns": cfg.ExcludeFilePatterns,
	}
}

// 📅 UpdatedSinceTime returns the updated_since cutoff as a time, or nil
// when unset or unparseable
func (cfg *Settings) UpdatedSinceTime() *time.Time {
	if cfg.UpdatedSince == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, cfg.UpdatedSince)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func boolPtr(b bool) *bool {
	return &b
}
