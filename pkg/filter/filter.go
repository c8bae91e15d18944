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

// Package filter holds the inclusion predicates applied to raw records
// before they become documents. Every predicate fails open on ambiguous
// or malformed dates: a transient formatting inconsistency must never
// silently drop legitimate data.
package filter

import (
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hrtools/bamboosync/pkg/config"
	"github.com/hrtools/bamboosync/pkg/document"
	"github.com/hrtools/bamboosync/pkg/manifest"
)

// 🎯 Criteria evaluates the configured allow-lists and date cutoffs
type Criteria struct {
	cfg           *config.Settings
	hireDateAfter *time.Time
	updatedSince  *time.Time
}

// 🏭 New builds Criteria from validated settings
func New(cfg *config.Settings) *Criteria {
	return &Criteria{
		cfg:           cfg,
		hireDateAfter: document.ParseTimePtr(cfg.HireDateAfter),
		updatedSince:  cfg.UpdatedSinceTime(),
	}
}

// 👤 IncludeEmployee decides whether an employee survives into the output
func (c *Criteria) IncludeEmployee(emp document.RawEmployee, detail document.RawEmployeeDetail) bool {
	if c.cfg.IndexingScope == config.ScopeEverything {
		return true
	}

	if len(c.cfg.Departments) > 0 && !slices.Contains(c.cfg.Departments, emp.Str("department")) {
		return false
	}
	if len(c.cfg.JobTitles) > 0 && !slices.Contains(c.cfg.JobTitles, emp.Str("jobTitle")) {
		return false
	}
	if len(c.cfg.EmploymentStatus) > 0 && !slices.Contains(c.cfg.EmploymentStatus, detail.Str("status")) {
		return false
	}

	return notBefore(detail.Str("hireDate"), c.hireDateAfter)
}

// 📄 IncludeFile decides whether a file record survives into the output
func (c *Criteria) IncludeFile(f manifest.FileRecord) bool {
	if !c.cfg.FilesEnabled() {
		return false
	}

	// Explicit name exclusions win even when indexing everything
	for _, pattern := range c.cfg.ExcludeFilePatterns {
		if ok, err := doublestar.Match(pattern, f.Name); err == nil && ok {
			return false
		}
	}

	if c.cfg.IndexingScope == config.ScopeEverything {
		return true
	}

	if len(c.cfg.FileCategories) > 0 && !slices.Contains(c.cfg.FileCategories, f.Category) {
		return false
	}

	return notBefore(f.LastUpdated, c.updatedSince)
}

// 🏖️ IncludeTimeOff decides whether a time-off record survives into the output
func (c *Criteria) IncludeTimeOff(rec document.RawTimeOff) bool {
	if !c.cfg.TimeOffEnabled() {
		return false
	}

	if c.cfg.IndexingScope == config.ScopeEverything {
		return true
	}

	if len(c.cfg.TimeOffTypes) > 0 && !slices.Contains(c.cfg.TimeOffTypes, rec.Type()) {
		return false
	}

	return notBefore(timeOffUpdated(rec), c.updatedSince)
}

// 🕐 timeOffUpdated resolves the effective last-changed timestamp:
// structured status timestamp, then last-modified, then creation
func timeOffUpdated(rec document.RawTimeOff) string {
	if v := rec.Field("status").Get("lastChanged"); v != "" {
		return v
	}
	if v := rec.Str("lastModified"); v != "" {
		return v
	}
	return rec.Str("created")
}

// notBefore reports whether value is not strictly earlier than the
// cutoff. A nil cutoff, an empty value, or a parse failure all include.
func notBefore(value string, cutoff *time.Time) bool {
	if cutoff == nil {
		return true
	}
	t := document.ParseTimePtr(value)
	if t == nil {
		return true
	}
	return !t.Before(*cutoff)
}
