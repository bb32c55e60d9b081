package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no-show"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `json:"id" validate:"required"`
	CustomerName  string        `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string        `json:"customer_email" validate:"required,email"`
	Start         time.Time     `json:"start" validate:"required"`
	End           time.Time     `json:"end" validate:"required,gtfield=Start"`
	Status        BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed no-show"`
	Price         float64       `json:"price" validate:"gte=0"`
	CreatedAt     time.Time     `json:"created_at"`
}
