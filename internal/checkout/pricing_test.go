package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	t.Parallel()

	base := time.Date(2022, time.July, 21, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		dropOff time.Time
		want    int
	}{
		{name: "Same day", dropOff: base, want: 1},
		{name: "Next day", dropOff: base.AddDate(0, 0, 1), want: 2},
		{name: "Partial day rounds up", dropOff: base.Add(30 * time.Hour), want: 3},
		{name: "Week", dropOff: base.AddDate(0, 0, 7), want: 8},
		{name: "Reversed clamps to one", dropOff: base.AddDate(0, 0, -3), want: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, RentalDays(base, tc.dropOff))
		})
	}
}

func TestTotalPriceAndMinorUnits(t *testing.T) {
	t.Parallel()

	total := TotalPrice(80.00, 2)
	assert.Equal(t, 160.00, total)
	assert.Equal(t, int64(16000), MinorUnits(total))

	assert.Equal(t, 80.00, TotalPrice(80.00, 0))
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(3), MinorUnits(0.025))
}
