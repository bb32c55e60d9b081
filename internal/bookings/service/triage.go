package service

import (
	"sort"
	"strings"

	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// Pending derives the operator triage view: pending bookings in ascending
// start order. The sort is stable, so bookings starting at the same time
// keep their input order; there is no secondary key. The view is a pure
// function of its input and is re-derived on every call, never cached.
func Pending(bookings []model.Booking) []model.Booking {
	out := make([]model.Booking, 0)
	for _, booking := range bookings {
		if booking.Status == model.BookingPending {
			out = append(out, booking)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// Filter narrows a booking collection by status and a free-text term
// matched case-insensitively against customer name and email. An empty
// status keeps all statuses; an empty term keeps all bookings.
func Filter(bookings []model.Booking, status model.BookingStatus, term string) []model.Booking {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]model.Booking, 0)
	for _, booking := range bookings {
		if status != "" && booking.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(booking.CustomerName), term) &&
			!strings.Contains(strings.ToLower(booking.CustomerEmail), term) {
			continue
		}
		out = append(out, booking)
	}
	return out
}
