package search

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeListing(t *testing.T) {
	t.Parallel()

	maxPrice := 120.5

	testCases := []struct {
		name     string
		query    string
		expected Listing
		wantErr  bool
	}{
		{
			name:     "Empty",
			query:    "",
			expected: Listing{},
		},
		{
			name:  "Facets collapse duplicates",
			query: "transmissionType=Manual&transmissionType=Automatic&transmissionType=Manual&fuelType=Petrol&numberOfSeats=4&numberOfSeats=4&numberOfSeats=7",
			expected: Listing{Filter: Filter{
				TransmissionType: []string{"Manual", "Automatic"},
				FuelType:         []string{"Petrol"},
				NumberOfSeats:    []int{4, 7},
			}},
		},
		{
			name:  "Dates query and price",
			query: "q=+civic+&pickUpDate=2022-07-21&dropOffDate=2022-07-22&maxPrice=120.5&priceSort=desc",
			expected: Listing{
				Filter:      Filter{SearchQuery: "civic", PriceSort: PriceSortDesc, MaxPrice: &maxPrice},
				PickUpDate:  "2022-07-21",
				DropOffDate: "2022-07-22",
			},
		},
		{
			name:    "Bad seats",
			query:   "numberOfSeats=four",
			wantErr: true,
		},
		{
			name:    "Bad max price",
			query:   "maxPrice=cheap",
			wantErr: true,
		},
		{
			name:    "Negative max price",
			query:   "maxPrice=-1",
			wantErr: true,
		},
		{
			name:    "Bad sort",
			query:   "priceSort=random",
			wantErr: true,
		},
		{
			name:    "Bad date",
			query:   "pickUpDate=21/07/2022",
			wantErr: true,
		},
		{
			name:    "Reversed range",
			query:   "pickUpDate=2022-07-22&dropOffDate=2022-07-21",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			l, err := ComposeListing(values)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidQuery))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, l)
		})
	}
}

func TestListingQueryChoice(t *testing.T) {
	t.Parallel()

	price := 50.0

	testCases := []struct {
		name      string
		listing   Listing
		available bool
		dateRange bool
	}{
		{name: "Nothing set", listing: Listing{}},
		{name: "Sort only", listing: Listing{Filter: Filter{PriceSort: PriceSortAsc}}},
		{name: "Query", listing: Listing{Filter: Filter{SearchQuery: "swift"}}, available: true},
		{name: "Facet", listing: Listing{Filter: Filter{FuelType: []string{"Diesel"}}}, available: true},
		{name: "Max price", listing: Listing{Filter: Filter{MaxPrice: &price}}, available: true},
		{name: "Pick-up only", listing: Listing{PickUpDate: "2022-07-21"}, available: true},
		{
			name:      "Both dates",
			listing:   Listing{PickUpDate: "2022-07-21", DropOffDate: "2022-07-22"},
			available: true,
			dateRange: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.available, tc.listing.UseAvailableQuery())
			assert.Equal(t, tc.dateRange, tc.listing.HasDateRange())
		})
	}
}

func TestTypesenseFilter(t *testing.T) {
	t.Parallel()

	price := 99.9

	assert.Empty(t, TypesenseFilter(Filter{SearchQuery: "only text"}))

	got := TypesenseFilter(Filter{
		TransmissionType: []string{"Manual"},
		FuelType:         []string{"Petrol", "Electric"},
		NumberOfSeats:    []int{4, 5},
		MaxPrice:         &price,
	})

	assert.Equal(t,
		"pricePerDay:<=99 && car.transmissionType:=[`Manual`] && car.fuelType:=[`Petrol`,`Electric`] && car.numberOfSeats:=[4,5]",
		got,
	)
}
