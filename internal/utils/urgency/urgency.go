// Package urgency derives the dashboard's destination groupings from a
// reservation list. It is a pure function of its input; nothing is persisted.
package urgency

import (
	"sort"
	"time"

	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// Window is how far ahead a tour date may be for its group to be flagged
// urgent: [today, today+Window).
const Window = 3 * 24 * time.Hour

// GroupByDestination groups reservations by destination name. Rows within a
// group are ordered by (tour date, pickup time); groups are ordered by their
// earliest tour date so the most imminent destinations surface first. A group
// is urgent when any of its reservations departs within Window of now.
func GroupByDestination(reservations []domain.Reservation, now time.Time) []domain.ReservationGroup {
	byDestination := make(map[string][]domain.Reservation)
	for _, r := range reservations {
		byDestination[r.DestinationName] = append(byDestination[r.DestinationName], r)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.Add(Window)

	groups := make([]domain.ReservationGroup, 0, len(byDestination))
	for destination, rows := range byDestination {
		sort.SliceStable(rows, func(i, j int) bool {
			if !rows[i].TourDate.Equal(rows[j].TourDate) {
				return rows[i].TourDate.Before(rows[j].TourDate)
			}
			return rows[i].PickupTime < rows[j].PickupTime
		})

		urgent := false
		for _, r := range rows {
			if !r.TourDate.Before(today) && r.TourDate.Before(horizon) {
				urgent = true
				break
			}
		}

		groups = append(groups, domain.ReservationGroup{
			Destination:  destination,
			Urgent:       urgent,
			Reservations: rows,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.Reservations[0].TourDate.Equal(b.Reservations[0].TourDate) {
			return a.Reservations[0].TourDate.Before(b.Reservations[0].TourDate)
		}
		return a.Destination < b.Destination
	})
	return groups
}
