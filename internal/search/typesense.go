package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const queryBy = "car.name,car.manufacturer.name,car.transmissionType,car.fuelType,car.numberOfSeats,car.type"

// Typesense runs free-text listing searches against the cars collection.
type Typesense struct {
	log        *slog.Logger
	client     *typesense.Client
	collection string
}

func NewTypesense(log *slog.Logger, server, apiKey, collection string, timeout time.Duration) *Typesense {
	client := typesense.NewClient(
		typesense.WithServer(server),
		typesense.WithAPIKey(apiKey),
		typesense.WithConnectionTimeout(timeout),
	)

	return &Typesense{
		log:        log,
		client:     client,
		collection: collection,
	}
}

// Search returns the documents ranked by text match. An empty query matches
// every document.
func (t *Typesense) Search(ctx context.Context, f Filter) ([]models.RentableCar, error) {
	const op = "search.Typesense.Search"

	q := f.SearchQuery
	if q == "" {
		q = "*"
	}

	params := &api.SearchCollectionParams{
		Q:       pointer.String(q),
		QueryBy: pointer.String(queryBy),
		SortBy:  pointer.String(sortBy(f.PriceSort)),
	}
	if expr := TypesenseFilter(f); expr != "" {
		params.FilterBy = pointer.String(expr)
	}

	res, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if res.Hits == nil {
		return []models.RentableCar{}, nil
	}

	cars := make([]models.RentableCar, 0, len(*res.Hits))
	for _, hit := range *res.Hits {
		if hit.Document == nil {
			continue
		}

		car, err := decodeDocument(*hit.Document)
		if err != nil {
			t.log.Warn("skipping malformed search document", slog.String("op", op), sl.Err(err))
			continue
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func sortBy(priceSort string) string {
	switch priceSort {
	case PriceSortAsc:
		return "pricePerDay:asc"
	case PriceSortDesc:
		return "pricePerDay:desc"
	default:
		return "_text_match:desc"
	}
}

func decodeDocument(doc map[string]interface{}) (models.RentableCar, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return models.RentableCar{}, err
	}

	var car models.RentableCar
	if err := json.Unmarshal(raw, &car); err != nil {
		return models.RentableCar{}, err
	}

	return car, nil
}
