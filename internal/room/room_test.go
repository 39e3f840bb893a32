package room

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-room-manager/internal/model"
)

func newRoom(t *testing.T, rows, seats int) *Room {
	t.Helper()
	r, err := New(model.Layout{Rows: rows, SeatsPerRow: seats}, DefaultPriceList())
	require.NoError(t, err)
	return r
}

func TestNew_RejectsOutOfBoundsDimensions(t *testing.T) {
	cases := []struct {
		name  string
		rows  int
		seats int
	}{
		{"zero rows", 0, 5},
		{"zero seats", 5, 0},
		{"negative rows", -3, 5},
		{"negative seats", 5, -1},
		{"too many rows", model.MaxDimension + 1, 5},
		{"too many seats", 5, model.MaxDimension + 1},
		{"huge square", 100000, 100000},
		{"product overflows int", math.MaxInt / 2, 3},
		{"rows far beyond memory", math.MaxInt, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(model.Layout{Rows: tc.rows, SeatsPerRow: tc.seats}, DefaultPriceList())
			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestNew_AcceptsLargestLayout(t *testing.T) {
	r := newRoom(t, model.MaxDimension, model.MaxDimension)
	assert.Equal(t, 1000000, r.TotalSeats())
	assert.Equal(t, 10*500*1000+8*500*1000, r.TotalIncome())

	price, err := r.Purchase(model.MaxDimension, model.MaxDimension)
	require.NoError(t, err)
	assert.Equal(t, 8, price)
}

func TestNew_RejectsNegativePrices(t *testing.T) {
	_, err := New(model.Layout{Rows: 2, SeatsPerRow: 2}, PriceList{FrontPrice: -1, BackPrice: 8, SmallRoomLimit: 60})
	assert.ErrorIs(t, err, ErrInvalidPriceList)
}

func TestTotalIncome_SmallRoomsAreFlat(t *testing.T) {
	for rows := 1; rows <= 10; rows++ {
		for seats := 1; seats <= 10; seats++ {
			if rows*seats > 60 {
				continue
			}
			r := newRoom(t, rows, seats)
			assert.Equal(t, 10*rows*seats, r.TotalIncome(), "rows=%d seats=%d", rows, seats)
		}
	}
}

func TestTotalIncome_LargeRoomsAreTiered(t *testing.T) {
	for rows := 1; rows <= 15; rows++ {
		for seats := 1; seats <= 15; seats++ {
			if rows*seats <= 60 {
				continue
			}
			r := newRoom(t, rows, seats)
			want := 10*(rows/2)*seats + 8*(rows-rows/2)*seats
			assert.Equal(t, want, r.TotalIncome(), "rows=%d seats=%d", rows, seats)
		}
	}
}

func TestPurchase_EightByNine(t *testing.T) {
	r := newRoom(t, 8, 9)
	assert.Equal(t, 648, r.TotalIncome())

	price, err := r.Purchase(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, price)

	price, err = r.Purchase(8, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, price)

	// row 4 is the last front row, row 5 the first back row
	price, _ = r.Purchase(4, 9)
	assert.Equal(t, 10, price)
	price, _ = r.Purchase(5, 9)
	assert.Equal(t, 8, price)
}

func TestPurchase_FiveByFiveIsAlwaysTen(t *testing.T) {
	r := newRoom(t, 5, 5)
	assert.Equal(t, 250, r.TotalIncome())
	for row := 1; row <= 5; row++ {
		for seat := 1; seat <= 5; seat++ {
			price, err := r.Purchase(row, seat)
			require.NoError(t, err)
			assert.Equal(t, 10, price)
		}
	}
}

func TestPurchase_TwiceFailsWithoutSideEffects(t *testing.T) {
	r := newRoom(t, 8, 9)
	_, err := r.Purchase(3, 3)
	require.NoError(t, err)
	before := r.Statistics()

	_, err = r.Purchase(3, 3)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, before, r.Statistics())
}

func TestPurchase_OutOfRangeNeverMutates(t *testing.T) {
	r := newRoom(t, 3, 4)
	for _, p := range [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 5}, {-1, -1}, {100, 100}} {
		_, err := r.Purchase(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "row=%d seat=%d", p[0], p[1])
	}
	assert.Equal(t, model.Statistics{TotalIncome: 120}, r.Statistics())
	assert.Equal(t, "  1 2 3 4 \n1 S S S S \n2 S S S S \n3 S S S S \n", r.Render())
}

func TestPurchase_FullHouse(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {8, 9}, {7, 11}, {1, 1}, {9, 9}} {
		r := newRoom(t, dims[0], dims[1])
		for row := 1; row <= dims[0]; row++ {
			for seat := 1; seat <= dims[1]; seat++ {
				_, err := r.Purchase(row, seat)
				require.NoError(t, err)
			}
		}
		st := r.Statistics()
		assert.Equal(t, r.TotalSeats(), st.TicketsSold)
		assert.Equal(t, 100.0, st.Percentage)
		assert.Equal(t, st.TotalIncome, st.CurrentIncome)
	}
}

func TestStatistics_Percentage(t *testing.T) {
	r := newRoom(t, 3, 3)
	_, _ = r.Purchase(1, 1)
	assert.InDelta(t, 11.11, r.Statistics().Percentage, 0.01)
}

func TestStatus(t *testing.T) {
	r := newRoom(t, 2, 2)
	_, _ = r.Purchase(2, 1)

	st, err := r.Status(2, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SeatBooked, st)

	st, err = r.Status(1, 2)
	require.NoError(t, err)
	assert.Equal(t, model.SeatFree, st)

	_, err = r.Status(3, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPrice_DoesNotBook(t *testing.T) {
	r := newRoom(t, 10, 10)
	price, err := r.Price(10, 10)
	require.NoError(t, err)
	assert.Equal(t, 8, price)
	assert.Zero(t, r.Statistics().TicketsSold)

	_, err = r.Price(11, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
