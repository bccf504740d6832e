package request

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFlightsRequest_Filter(t *testing.T) {
	t.Run("empty request yields an empty filter", func(t *testing.T) {
		req := ListFlightsRequest{}

		filter, err := req.Filter()

		require.NoError(t, err)
		assert.Empty(t, filter.SourceIDs)
		assert.Empty(t, filter.DestinationIDs)
		assert.Nil(t, filter.DepartureDate)
		assert.Nil(t, filter.ArrivalDate)
	})

	t.Run("parses comma-separated id lists", func(t *testing.T) {
		req := ListFlightsRequest{
			FlightSource:      "1,2,3",
			FlightDestination: "4",
		}

		filter, err := req.Filter()

		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3}, filter.SourceIDs)
		assert.Equal(t, []uint{4}, filter.DestinationIDs)
	})

	t.Run("parses dates in the YYYY-MM-DD-HH:MM layout", func(t *testing.T) {
		req := ListFlightsRequest{
			DepartureTime: "2025-06-01-10:30",
		}

		filter, err := req.Filter()

		require.NoError(t, err)
		require.NotNil(t, filter.DepartureDate)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), *filter.DepartureDate)
	})

	t.Run("collects every invalid parameter", func(t *testing.T) {
		req := ListFlightsRequest{
			FlightSource:  "1,abc",
			DepartureTime: "01/06/2025",
			ArrivalTime:   "2025-06-01-10:30",
		}

		_, err := req.Filter()

		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs, "flight_source")
		assert.Contains(t, errs, "departure_time")
		assert.NotContains(t, errs, "arrival_time")
	})
}

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
		wantOffset   int
	}{
		{
			name:         "defaults",
			wantPage:     1,
			wantPageSize: DefaultPageSize,
			wantOffset:   0,
		},
		{
			name:         "explicit page and size",
			page:         3,
			pageSize:     8,
			wantPage:     3,
			wantPageSize: 8,
			wantOffset:   16,
		},
		{
			name:         "page size capped at the maximum",
			page:         1,
			pageSize:     50,
			wantPage:     1,
			wantPageSize: MaxPageSize,
			wantOffset:   0,
		},
		{
			name:         "negative values fall back to defaults",
			page:         -1,
			pageSize:     -5,
			wantPage:     1,
			wantPageSize: DefaultPageSize,
			wantOffset:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, PageSize: tt.pageSize}
			p.Normalize()

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
