// Package filter derives the publicly visible view of an event collection.
package filter

import (
	"eventsBoard/internal/models"
	"strings"
)

// VisibleEvents returns the approved events matching every non-empty criterion,
// in input order. It never returns nil.
func VisibleEvents(events []models.Event, f models.EventFilters) []models.Event {
	search := strings.ToLower(f.Search)
	location := strings.ToLower(f.Location)

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if match(e, f, search, location) {
			out = append(out, e)
		}
	}

	return out
}

// Match reports whether a single event is visible under f.
func Match(e models.Event, f models.EventFilters) bool {
	return match(e, f, strings.ToLower(f.Search), strings.ToLower(f.Location))
}

// Pending returns the events awaiting moderation, in input order.
func Pending(events []models.Event) []models.Event {
	return ByStatus(events, models.StatusPending)
}

func ByStatus(events []models.Event, status models.EventStatus) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		if e.Status == status {
			out = append(out, e)
		}
	}

	return out
}

func match(e models.Event, f models.EventFilters, search, location string) bool {
	if e.Status != models.StatusApproved {
		return false
	}

	if search != "" &&
		!strings.Contains(strings.ToLower(e.Title), search) &&
		!strings.Contains(strings.ToLower(e.Description), search) {
		return false
	}

	if f.Category != "" && e.Category != f.Category {
		return false
	}

	// ISO dates compare lexically in chronological order.
	if f.DateFrom != "" && e.Date < f.DateFrom {
		return false
	}

	if f.DateTo != "" && e.Date > f.DateTo {
		return false
	}

	if location != "" &&
		!strings.Contains(strings.ToLower(e.Location.Name), location) &&
		!strings.Contains(strings.ToLower(e.Location.Address), location) {
		return false
	}

	return true
}
