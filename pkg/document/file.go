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

package document

import (
	"fmt"
	"strings"

	"github.com/hrtools/bamboosync/pkg/manifest"
)

// 📂 FileScope distinguishes employee-attached files from company-wide ones
type FileScope string

const (
	FileScopeEmployee FileScope = "employee"
	FileScopeCompany  FileScope = "company"
)

// 📄 BuildFile creates a canonical document from a file record and its
// downloaded content. owner is the employee name for employee-scoped
// files, empty otherwise.
func BuildFile(f manifest.FileRecord, content string, scope FileScope, owner string, c Context) Document {
	title := f.Name
	if title == "" {
		title = "Untitled"
	}

	// Employee files link to the files tab of the owner's profile;
	// company files link to the generic files area
	var url string
	if scope == FileScopeEmployee && f.EmployeeID != "" {
		url = c.appURL(fmt.Sprintf("/employees/employee.php?id=%s&tab=files", f.EmployeeID))
	} else {
		url = c.appURL("/files")
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Company: %s\n", c.Company)
	fmt.Fprintf(&text, "File: %s\n", title)
	if owner != "" {
		fmt.Fprintf(&text, "Owner: %s\n", owner)
	}
	if f.Category != "" {
		fmt.Fprintf(&text, "Category: %s\n", f.Category)
	}
	text.WriteString("\n" + content)

	metadata := map[string]string{
		"type":      "file",
		"company":   c.Company,
		"file_type": string(scope),
		"file_name": title,
		"category":  f.Category,
		"owner":     owner,
	}

	fullTitle := fmt.Sprintf("%s - %s", title, c.Company)

	return Document{
		ID:         FileID(scope, f.ID),
		Title:      fullTitle,
		SemanticID: fmt.Sprintf("File: %s", fullTitle),
		Sections:   []Section{{Link: url, Text: text.String()}},
		Source:     Source,
		UpdatedAt:  ParseTimePtr(f.LastUpdated),
		Metadata:   metadata,
	}
}
