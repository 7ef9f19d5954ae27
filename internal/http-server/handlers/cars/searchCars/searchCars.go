package searchCars

import (
	"context"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/search"

	"github.com/go-chi/render"
)

type SearchResponse struct {
	response.Response
	Cars []models.RentableCar `json:"cars"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarSearcher
type CarSearcher interface {
	Search(ctx context.Context, f search.Filter) ([]models.RentableCar, error)
}

// New serves free-text search from the search index. Dates are accepted but
// ignored since the index knows nothing about bookings.
func New(log *slog.Logger, searcher CarSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cars.searchCars.New"

		log := log.With(slog.String("op", op))

		listing, err := search.ComposeListing(r.URL.Query())
		if err != nil {
			log.Error("invalid search query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid search query"))
			return
		}

		cars, err := searcher.Search(r.Context(), listing.Filter)
		if err != nil {
			log.Error("search failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search cars"))
			return
		}

		log.Info("search completed", slog.String("query", listing.SearchQuery), slog.Int("hits", len(cars)))

		if cars == nil {
			cars = []models.RentableCar{}
		}

		render.JSON(w, r, SearchResponse{
			Response: response.OK(),
			Cars:     cars,
		})
	}
}
