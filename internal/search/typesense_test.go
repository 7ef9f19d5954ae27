package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carRental/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesenseSearch(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/cars/documents/search", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-TYPESENSE-API-KEY"))

		gotQuery = map[string]string{
			"q":         r.URL.Query().Get("q"),
			"query_by":  r.URL.Query().Get("query_by"),
			"filter_by": r.URL.Query().Get("filter_by"),
			"sort_by":   r.URL.Query().Get("sort_by"),
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"found": 2,
			"out_of": 2,
			"page": 1,
			"search_time_ms": 1,
			"hits": [
				{"document": {"id": "3", "carId": 9, "pricePerDay": 80, "availableQuantity": 2, "car": {"id": "9", "name": "Civic", "fuelType": "Petrol"}}},
				{"document": {"id": "4", "carId": 10, "pricePerDay": "not a number"}}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	ts := NewTypesense(slogdiscard.NewDiscardLogger(), srv.URL, "secret", "cars", time.Second)

	cars, err := ts.Search(context.Background(), Filter{
		SearchQuery: "civic",
		FuelType:    []string{"Petrol"},
		PriceSort:   PriceSortAsc,
	})
	require.NoError(t, err)

	require.Len(t, cars, 1)
	assert.Equal(t, "3", cars[0].ID.String())
	assert.Equal(t, "9", cars[0].Car.ID.String())
	assert.Equal(t, 80.0, cars[0].PricePerDay)

	assert.Equal(t, "civic", gotQuery["q"])
	assert.Equal(t, queryBy, gotQuery["query_by"])
	assert.Equal(t, "car.fuelType:=[`Petrol`]", gotQuery["filter_by"])
	assert.Equal(t, "pricePerDay:asc", gotQuery["sort_by"])
}

func TestTypesenseSearchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not found."}`))
	}))
	t.Cleanup(srv.Close)

	ts := NewTypesense(slogdiscard.NewDiscardLogger(), srv.URL, "secret", "cars", time.Second)

	_, err := ts.Search(context.Background(), Filter{})
	require.Error(t, err)
}
