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
)

// 🏖️ BuildTimeOff creates a canonical document from a time-off request.
// employeeName comes from the directory lookup when available; the
// record's own name field is the fallback.
func BuildTimeOff(rec RawTimeOff, employeeName string, c Context) Document {
	timeOffID := rec.Str("id")
	employeeID := rec.Str("employeeId")
	if employeeName == "" {
		employeeName = rec.Str("name")
	}

	// Normalize the polymorphic fields once, up front
	timeOffType := rec.Type()
	status := rec.Status()
	notes := rec.Field("notes")
	amount := rec.Field("amount")

	displayType := timeOffType
	if displayType == "" {
		displayType = "Time Off"
	}
	title := fmt.Sprintf("%s - %s", employeeName, displayType)

	url := c.appURL(fmt.Sprintf("/employees/timeoff/?id=%s", employeeID))

	var text strings.Builder
	fmt.Fprintf(&text, "Company: %s\n", c.Company)
	fmt.Fprintf(&text, "Time Off Request: %s\n", title)
	fmt.Fprintf(&text, "Employee ID: %s\n", employeeID)
	fmt.Fprintf(&text, "Employee: %s\n", employeeName)
	fmt.Fprintf(&text, "Type: %s\n", timeOffType)
	fmt.Fprintf(&text, "Start Date: %s\n", rec.Str("start"))
	fmt.Fprintf(&text, "End Date: %s\n", rec.Str("end"))

	if value := amount.StrOr("amount"); value != "" {
		unit := amount.Get("unit")
		if unit == "" {
			unit = "days"
		}
		fmt.Fprintf(&text, "Amount: %s %s\n", value, unit)
	}

	if status != "" {
		fmt.Fprintf(&text, "Status: %s\n", status)
	}

	// Structured notes carry separate employee and manager entries; a
	// scalar note becomes a single unlabeled line
	if notes.IsStructured() {
		if employeeNotes := notes.Get("employee"); employeeNotes != "" {
			fmt.Fprintf(&text, "Employee Notes: %s\n", employeeNotes)
		}
		if managerNotes := notes.Get("manager"); managerNotes != "" {
			fmt.Fprintf(&text, "Manager Notes: %s\n", managerNotes)
		}
	} else if notes.Str() != "" {
		fmt.Fprintf(&text, "Notes: %s\n", notes.Str())
	}

	metadata := map[string]string{
		"type":          "time_off",
		"company":       c.Company,
		"employee_id":   employeeID,
		"time_off_type": timeOffType,
		"status":        status,
		"start_date":    rec.Str("start"),
		"end_date":      rec.Str("end"),
	}

	// Update time priority: structured status lastChanged, then the
	// record's lastModified
	var updatedAt = ParseTimePtr(rec.Field("status").Get("lastChanged"))
	if updatedAt == nil {
		updatedAt = ParseTimePtr(rec.Str("lastModified"))
	}

	return Document{
		ID:         TimeOffID(timeOffID),
		Title:      fmt.Sprintf("%s - %s", title, c.Company),
		SemanticID: fmt.Sprintf("Time Off: %s - %s", title, c.Company),
		Sections:   []Section{{Link: url, Text: text.String()}},
		Source:     Source,
		UpdatedAt:  updatedAt,
		Metadata:   metadata,
	}
}
