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

// Package manifest parses the XML file manifests returned by the
// files/view endpoints into flat file records.
package manifest

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/rs/zerolog"
)

// 📄 FileRecord is one file entry from a manifest.
// LastUpdated carries the revision's creation timestamp; the manifest API
// exposes no true modification time.
type FileRecord struct {
	ID          string
	Name        string
	Category    string
	CategoryID  string
	LastUpdated string
	EmployeeID  string // empty for company-wide files
}

// xmlManifest mirrors the manifest markup: category elements nesting
// file elements. Missing text nodes decode to empty strings.
type xmlManifest struct {
	Categories []struct {
		ID    string `xml:"id,attr"`
		Name  string `xml:"name"`
		Files []struct {
			ID          string `xml:"id,attr"`
			Name        string `xml:"name"`
			CreatedDate string `xml:"createdDate"`
		} `xml:"file"`
	} `xml:"category"`
}

// 📂 ParseEmployeeFiles parses an employee file manifest. The employee id
// is attached to every record. Malformed markup yields an empty slice,
// never an error.
func ParseEmployeeFiles(ctx context.Context, content string, employeeID string) []FileRecord {
	return parse(ctx, content, employeeID)
}

// 🏢 ParseCompanyFiles parses the company-wide file manifest
func ParseCompanyFiles(ctx context.Context, content string) []FileRecord {
	return parse(ctx, content, "")
}

func parse(ctx context.Context, content string, employeeID string) []FileRecord {
	logger := zerolog.Ctx(ctx)

	var doc xmlManifest
	decoder := xml.NewDecoder(strings.NewReader(content))
	if err := decoder.Decode(&doc); err != nil {
		// A single bad manifest must not abort the whole sync
		logger.Error().
			Str("employee_id", employeeID).
			Err(err).
			Msg("parsing file manifest")
		return []FileRecord{}
	}

	files := []FileRecord{}
	for _, category := range doc.Categories {
		for _, file := range category.Files {
			files = append(files, FileRecord{
				ID:          file.ID,
				Name:        file.Name,
				Category:    category.Name,
				CategoryID:  category.ID,
				LastUpdated: file.CreatedDate,
				EmployeeID:  employeeID,
			})
		}
	}

	return files
}
