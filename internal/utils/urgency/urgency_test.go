package urgency_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/utils/urgency"
)

var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func reservation(destination string, tourDate time.Time, pickup string) domain.Reservation {
	return domain.Reservation{
		DestinationName: destination,
		TourDate:        tourDate,
		PickupTime:      pickup,
	}
}

func TestGroupByDestination_GroupsAndOrders(t *testing.T) {
	reservations := []domain.Reservation{
		reservation("Pamukkale", now.AddDate(0, 0, 10), "09:00"),
		reservation("Cappadocia", now.AddDate(0, 0, 5), "07:30"),
		reservation("Cappadocia", now.AddDate(0, 0, 4), "10:00"),
		reservation("Ephesus", now.AddDate(0, 0, 5), "08:00"),
	}

	groups := urgency.GroupByDestination(reservations, now)

	require.Len(t, groups, 3)
	// Ordered by earliest departure, ties broken by name.
	assert.Equal(t, "Cappadocia", groups[0].Destination)
	assert.Equal(t, "Ephesus", groups[1].Destination)
	assert.Equal(t, "Pamukkale", groups[2].Destination)

	// Rows inside a group ordered by (tour date, pickup time).
	require.Len(t, groups[0].Reservations, 2)
	assert.Equal(t, "10:00", groups[0].Reservations[0].PickupTime)
	assert.Equal(t, "07:30", groups[0].Reservations[1].PickupTime)
}

func TestGroupByDestination_UrgencyWindow(t *testing.T) {
	reservations := []domain.Reservation{
		reservation("Today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), ""),
		reservation("In two days", time.Date(2025, 6, 17, 23, 0, 0, 0, time.UTC), ""),
		reservation("In three days", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), ""),
		reservation("Yesterday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), ""),
	}

	groups := urgency.GroupByDestination(reservations, now)

	byName := make(map[string]bool, len(groups))
	for _, g := range groups {
		byName[g.Destination] = g.Urgent
	}

	assert.True(t, byName["Today"])
	assert.True(t, byName["In two days"])
	// The window is [today, today+3d): day three itself is outside it.
	assert.False(t, byName["In three days"])
	assert.False(t, byName["Yesterday"])
}

func TestGroupByDestination_PickupTimeBreaksSameDayTies(t *testing.T) {
	day := now.AddDate(0, 0, 7)
	reservations := []domain.Reservation{
		reservation("Antalya", day, "14:00"),
		reservation("Antalya", day, "06:45"),
		reservation("Antalya", day, ""),
	}

	groups := urgency.GroupByDestination(reservations, now)

	require.Len(t, groups, 1)
	rows := groups[0].Reservations
	assert.Equal(t, "", rows[0].PickupTime)
	assert.Equal(t, "06:45", rows[1].PickupTime)
	assert.Equal(t, "14:00", rows[2].PickupTime)
}

func TestGroupByDestination_Empty(t *testing.T) {
	assert.Empty(t, urgency.GroupByDestination(nil, now))
}
