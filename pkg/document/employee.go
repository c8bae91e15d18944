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
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Directory fields rendered into the text body, in display order
var employeeTextFields = []string{
	"jobTitle",
	"department",
	"location",
	"workPhone",
	"mobilePhone",
	"workEmail",
	"homeEmail",
}

// Detail fields appended only when a detail mapping was supplied
var employeeDetailFields = []string{
	"hireDate",
	"status",
}

var labelCaser = cases.Title(language.English)

// 🏷️ titleLabel turns a camelCase field name into a title-cased label,
// e.g. "jobTitle" -> "Job Title"
func titleLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return labelCaser.String(b.String())
}

// 👤 BuildEmployee creates a canonical document from a directory entry and
// its (possibly empty) detail mapping
func BuildEmployee(emp RawEmployee, detail RawEmployeeDetail, c Context) Document {
	employeeID := emp.ID()
	name := emp.Name()

	url := c.appURL(fmt.Sprintf("/employees/employee.php?id=%s", employeeID))

	var text strings.Builder
	fmt.Fprintf(&text, "Company: %s\n", c.Company)
	fmt.Fprintf(&text, "Employee: %s\n", name)
	fmt.Fprintf(&text, "ID: %s\n", employeeID)

	for _, field := range employeeTextFields {
		if value := emp.Str(field); value != "" {
			fmt.Fprintf(&text, "%s: %s\n", titleLabel(field), value)
		}
	}

	if len(detail) > 0 {
		for _, field := range employeeDetailFields {
			if value := detail.Str(field); value != "" {
				fmt.Fprintf(&text, "%s: %s\n", titleLabel(field), value)
			}
		}
		if value := detail.Str("terminationDate"); value != "" {
			fmt.Fprintf(&text, "Termination Date: %s\n", value)
		}
	}

	// Metadata must never carry null values; absent fields become ""
	metadata := map[string]string{
		"type":             "employee",
		"company":          c.Company,
		"employee_id":      employeeID,
		"department":       emp.Str("department"),
		"job_title":        emp.Str("jobTitle"),
		"status":           detail.Str("status"),
		"hire_date":        detail.Str("hireDate"),
		"termination_date": detail.Str("terminationDate"),
	}

	return Document{
		ID:         EmployeeID(employeeID),
		Title:      fmt.Sprintf("%s - %s", name, c.Company),
		SemanticID: fmt.Sprintf("Employee: %s - %s", name, c.Company),
		Sections:   []Section{{Link: url, Text: text.String()}},
		Source:     Source,
		UpdatedAt:  ParseTimePtr(detail.Str("lastChanged")),
		Metadata:   metadata,
	}
}
