package domain

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	airplane := Airplane{
		Rows:       10,
		SeatsInRow: 6,
	}

	tests := []struct {
		name       string
		row        int
		seat       int
		wantFields []string
	}{
		{
			name: "valid seat",
			row:  1,
			seat: 1,
		},
		{
			name: "valid seat at upper bounds",
			row:  10,
			seat: 6,
		},
		{
			name:       "row too small",
			row:        0,
			seat:       3,
			wantFields: []string{"row"},
		},
		{
			name:       "row too large",
			row:        11,
			seat:       3,
			wantFields: []string{"row"},
		},
		{
			name:       "seat too small",
			row:        5,
			seat:       0,
			wantFields: []string{"seat"},
		},
		{
			name:       "seat too large",
			row:        5,
			seat:       7,
			wantFields: []string{"seat"},
		},
		{
			name:       "both row and seat out of bounds",
			row:        0,
			seat:       99,
			wantFields: []string{"row", "seat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(airplane, tt.row, tt.seat)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}
