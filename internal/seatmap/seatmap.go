// Package seatmap holds the display-side seat logic: natural ordering
// of seat numbers and occupancy statistics. It works on plain seat
// slices and never talks to the store, so the web client and the API
// share one definition of "correct order" and "correct percentages".
package seatmap

import (
	"math"
	"sort"
	"strconv"

	"seat-board/internal/data/entity"
)

// Row is one display row of the board, keyed by its leading row letter.
type Row struct {
	Label string
	Seats []*entity.Seat
}

// Stats is an occupancy snapshot. BookedPercent is round(100*B/N) and
// AvailablePercent is 100 minus that, never rounded on its own, so the
// two always sum to exactly 100. An empty board counts as 0% booked.
type Stats struct {
	Total            int
	Booked           int
	Available        int
	BookedPercent    int
	AvailablePercent int
}

// splitSeatNo splits "A10" into row label "A" and column 10.
// ok is false when the suffix is not a number.
func splitSeatNo(seatNo string) (label string, col int, ok bool) {
	if seatNo == "" {
		return "", 0, false
	}

	label = seatNo[:1]
	col, err := strconv.Atoi(seatNo[1:])
	if err != nil {
		return label, 0, false
	}

	return label, col, true
}

// SortNatural orders seats by row letter, then by numeric column, so
// A2 comes before A10 instead of after it. Seat numbers without a
// numeric suffix sort after well-formed ones in the same row, by raw
// string.
func SortNatural(seats []*entity.Seat) {
	sort.SliceStable(seats, func(i, j int) bool {
		li, ci, oki := splitSeatNo(seats[i].SeatNo)
		lj, cj, okj := splitSeatNo(seats[j].SeatNo)

		if li != lj {
			return li < lj
		}
		if oki && okj {
			return ci < cj
		}
		if oki != okj {
			return oki
		}
		return seats[i].SeatNo < seats[j].SeatNo
	})
}

// GroupRows returns the seats grouped per row letter, rows in letter
// order and seats in natural order within each row. The input slice is
// not modified.
func GroupRows(seats []*entity.Seat) []Row {
	sorted := make([]*entity.Seat, len(seats))
	copy(sorted, seats)
	SortNatural(sorted)

	var rows []Row
	for _, seat := range sorted {
		label, _, _ := splitSeatNo(seat.SeatNo)
		if len(rows) == 0 || rows[len(rows)-1].Label != label {
			rows = append(rows, Row{Label: label})
		}
		rows[len(rows)-1].Seats = append(rows[len(rows)-1].Seats, seat)
	}

	return rows
}

// ComputeStats counts booked seats in the snapshot and derives the
// percentage pair.
func ComputeStats(seats []*entity.Seat) Stats {
	stats := Stats{Total: len(seats)}

	for _, seat := range seats {
		if seat.IsBooked {
			stats.Booked++
		}
	}
	stats.Available = stats.Total - stats.Booked

	if stats.Total > 0 {
		stats.BookedPercent = int(math.Round(float64(stats.Booked) * 100 / float64(stats.Total)))
	}
	stats.AvailablePercent = 100 - stats.BookedPercent

	return stats
}
