package search

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PriceSortAsc  = "asc"
	PriceSortDesc = "desc"
)

var ErrInvalidQuery = errors.New("invalid listing query")

// Filter is the composed set of independent facet selections.
type Filter struct {
	SearchQuery      string   `json:"searchQuery,omitempty"`
	TransmissionType []string `json:"transmissionType" validate:"dive,required"`
	FuelType         []string `json:"fuelType" validate:"dive,required"`
	NumberOfSeats    []int    `json:"numberOfSeats" validate:"dive,gt=0"`
	PriceSort        string   `json:"priceSort,omitempty" validate:"omitempty,oneof=asc desc"`
	MaxPrice         *float64 `json:"maxPrice,omitempty" validate:"omitempty,gt=0"`
}

// IsZero reports whether no facet or text query is selected. Sort order
// alone does not count as a filter.
func (f Filter) IsZero() bool {
	return f.SearchQuery == "" &&
		len(f.TransmissionType) == 0 &&
		len(f.FuelType) == 0 &&
		len(f.NumberOfSeats) == 0 &&
		f.MaxPrice == nil
}

// Listing is a filter plus the requested rental window.
type Listing struct {
	Filter
	PickUpDate  string `json:"pickUpDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DropOffDate string `json:"dropOffDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UseAvailableQuery reports whether the listing has to go through the
// date-and-filter query instead of the plain catalogue.
func (l Listing) UseAvailableQuery() bool {
	return l.PickUpDate != "" || l.DropOffDate != "" || !l.Filter.IsZero()
}

// HasDateRange reports whether both ends of the window are set.
func (l Listing) HasDateRange() bool {
	return l.PickUpDate != "" && l.DropOffDate != ""
}

var validate = validator.New()

// ComposeListing builds a listing from query parameters. Repeated facet
// parameters are multi-selections; duplicates collapse and first-seen order
// is kept.
func ComposeListing(q url.Values) (Listing, error) {
	l := Listing{
		Filter: Filter{
			SearchQuery:      strings.TrimSpace(q.Get("q")),
			TransmissionType: unique(q["transmissionType"]),
			FuelType:         unique(q["fuelType"]),
			PriceSort:        q.Get("priceSort"),
		},
		PickUpDate:  q.Get("pickUpDate"),
		DropOffDate: q.Get("dropOffDate"),
	}

	seats, err := parseSeats(q["numberOfSeats"])
	if err != nil {
		return Listing{}, err
	}
	l.NumberOfSeats = seats

	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Listing{}, fmt.Errorf("%w: maxPrice %q", ErrInvalidQuery, raw)
		}
		l.MaxPrice = &v
	}

	if err := validate.Struct(l); err != nil {
		return Listing{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	if l.HasDateRange() && l.DropOffDate < l.PickUpDate {
		return Listing{}, fmt.Errorf("%w: drop-off date is before pick-up date", ErrInvalidQuery)
	}

	return l, nil
}

func parseSeats(raw []string) ([]int, error) {
	var seats []int
	seen := make(map[int]struct{}, len(raw))

	for _, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: numberOfSeats %q", ErrInvalidQuery, s)
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		seats = append(seats, n)
	}

	return seats, nil
}

func unique(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// TypesenseFilter renders the facet selections as a filter_by expression.
func TypesenseFilter(f Filter) string {
	var clauses []string

	if f.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("pricePerDay:<=%d", int64(math.Floor(*f.MaxPrice))))
	}
	if len(f.TransmissionType) > 0 {
		clauses = append(clauses, "car.transmissionType:=["+joinQuoted(f.TransmissionType)+"]")
	}
	if len(f.FuelType) > 0 {
		clauses = append(clauses, "car.fuelType:=["+joinQuoted(f.FuelType)+"]")
	}
	if len(f.NumberOfSeats) > 0 {
		seats := make([]string, len(f.NumberOfSeats))
		for i, n := range f.NumberOfSeats {
			seats[i] = strconv.Itoa(n)
		}
		clauses = append(clauses, "car.numberOfSeats:=["+strings.Join(seats, ",")+"]")
	}

	return strings.Join(clauses, " && ")
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + strings.ReplaceAll(v, "`", "") + "`"
	}
	return strings.Join(quoted, ",")
}
