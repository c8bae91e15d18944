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

// Package document defines the canonical document representation handed
// to downstream indexing, and the builders that produce it from raw
// BambooHR records.
package document

import (
	"fmt"
	"time"
)

// 🏷️ Source tag attached to every document
const Source = "bamboohr"

// 📑 Section pairs a human-readable URL with formatted text
type Section struct {
	Link string `json:"link"`
	Text string `json:"text"`
}

// 📚 Document is the unified output entity.
// Metadata values are always strings; absent source fields become empty
// strings, never null. IDs are deterministic from record kind + natural id
// so re-fetching the same record re-indexes idempotently.
type Document struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	SemanticID string            `json:"semantic_identifier"`
	Sections   []Section         `json:"sections"`
	Source     string            `json:"source"`
	UpdatedAt  *time.Time        `json:"doc_updated_at,omitempty"` // nil when the source carries no usable timestamp
	Metadata   map[string]string `json:"metadata"`
}

// 🌐 Context is the shared build context: tenant name and the base URL of
// the BambooHR web application
type Context struct {
	Company string
	BaseURL string // e.g. https://acme.bamboohr.com
}

// 🔗 appURL builds a web application URL for document links
func (c Context) appURL(path string) string {
	return c.BaseURL + path
}

// 🆔 EmployeeID returns the document id for an employee record
func EmployeeID(naturalID string) string {
	return fmt.Sprintf("%s_employee_%s", Source, naturalID)
}

// 🆔 FileID returns the document id for a file record in the given scope
func FileID(scope FileScope, naturalID string) string {
	return fmt.Sprintf("%s_%s_file_%s", Source, scope, naturalID)
}

// 🆔 TimeOffID returns the document id for a time-off record
func TimeOffID(naturalID string) string {
	return fmt.Sprintf("%s_time_off_%s", Source, naturalID)
}
