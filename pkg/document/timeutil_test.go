package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      time.Time
		wantError bool
	}{
		{
			name:  "rfc3339",
			input: "2024-02-01T00:00:00Z",
			want:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339_with_offset",
			input: "2024-02-01T05:30:00+05:30",
			want:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "space_separated",
			input: "2024-02-01 12:00:00",
			want:  time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "date_only",
			input: "2023-06-01",
			want:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "epoch_seconds",
			input: "1706745600",
			want:  time.Unix(1706745600, 0).UTC(),
		},
		{
			name:      "garbage",
			input:     "not-a-date",
			wantError: true,
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimePtr(t *testing.T) {
	assert.Nil(t, ParseTimePtr(""))
	assert.Nil(t, ParseTimePtr("not-a-date"))

	got := ParseTimePtr("2024-02-01T00:00:00Z")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *got)
}
