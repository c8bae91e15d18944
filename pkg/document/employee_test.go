package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCtx = Context{Company: "acme", BaseURL: "https://acme.bamboohr.com"}

func TestBuildEmployee(t *testing.T) {
	emp := RawEmployee{
		"id":         "42",
		"firstName":  "Jane",
		"lastName":   "Doe",
		"jobTitle":   "Engineer",
		"department": "Eng",
		"workEmail":  "jane@acme.test",
	}
	detail := RawEmployeeDetail{
		"hireDate":    "2020-01-15",
		"status":      "Active",
		"lastChanged": "2024-03-01T10:00:00Z",
	}

	doc := BuildEmployee(emp, detail, testCtx)

	assert.Equal(t, "bamboohr_employee_42", doc.ID)
	assert.Equal(t, "Jane Doe - acme", doc.Title)
	assert.Equal(t, "Employee: Jane Doe - acme", doc.SemanticID)
	assert.Equal(t, "bamboohr", doc.Source)

	require.Len(t, doc.Sections, 1)
	section := doc.Sections[0]
	assert.Equal(t, "https://acme.bamboohr.com/employees/employee.php?id=42", section.Link)
	assert.Contains(t, section.Text, "Company: acme\n")
	assert.Contains(t, section.Text, "Employee: Jane Doe\n")
	assert.Contains(t, section.Text, "Job Title: Engineer\n")
	assert.Contains(t, section.Text, "Work Email: jane@acme.test\n")
	assert.Contains(t, section.Text, "Hire Date: 2020-01-15\n")
	assert.NotContains(t, section.Text, "Location:")

	require.NotNil(t, doc.UpdatedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), *doc.UpdatedAt)

	assert.Equal(t, "Active", doc.Metadata["status"])
	assert.Equal(t, "2020-01-15", doc.Metadata["hire_date"])
	assert.Equal(t, "Eng", doc.Metadata["department"])
}

func TestBuildEmployee_MissingDetail(t *testing.T) {
	emp := RawEmployee{"id": "7", "firstName": "Sam", "lastName": "Lee"}

	doc := BuildEmployee(emp, RawEmployeeDetail{}, testCtx)

	// Metadata values must be empty strings, never absent
	for _, key := range []string{"status", "hire_date", "termination_date"} {
		value, ok := doc.Metadata[key]
		require.True(t, ok, "metadata key %q missing", key)
		assert.Equal(t, "", value)
	}
	assert.Nil(t, doc.UpdatedAt)
	assert.NotContains(t, doc.Sections[0].Text, "Hire Date")
}

func TestBuildEmployee_NumericID(t *testing.T) {
	// Directory responses sometimes carry numeric ids
	emp := RawEmployee{"id": float64(42), "firstName": "Jane", "lastName": "Doe"}

	doc := BuildEmployee(emp, RawEmployeeDetail{}, testCtx)
	assert.Equal(t, "bamboohr_employee_42", doc.ID)
}

func TestBuildEmployee_Idempotent(t *testing.T) {
	emp := RawEmployee{"id": "42", "firstName": "Jane", "lastName": "Doe", "department": "Eng"}
	detail := RawEmployeeDetail{"status": "Active", "lastChanged": "2024-03-01T10:00:00Z"}

	first := BuildEmployee(emp, detail, testCtx)
	second := BuildEmployee(emp, detail, testCtx)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.Sections, second.Sections)
}

func TestTitleLabel(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "jobTitle", want: "Job Title"},
		{field: "workPhone", want: "Work Phone"},
		{field: "department", want: "Department"},
		{field: "homeEmail", want: "Home Email"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, titleLabel(tt.field))
		})
	}
}
