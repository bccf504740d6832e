package domain

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Ticket struct {
	ID     uint   `json:"id"`
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
	Flight Flight `json:"flight"`
}

// TicketRequest is one requested seat within an order.
type TicketRequest struct {
	FlightID uint `json:"flight"`
	Row      int  `json:"row"`
	Seat     int  `json:"seat"`
}

// ValidateSeat checks a 1-based seat coordinate against the airplane's
// geometry. Row and seat are checked independently so both violations are
// reported in a single error. It does not check uniqueness against sold
// tickets; the storage layer's compound constraint does that.
func ValidateSeat(airplane Airplane, row, seat int) error {
	errs := validation.Errors{}

	if row < 1 || row > airplane.Rows {
		errs["row"] = fmt.Errorf("row must be between 1 and %d", airplane.Rows)
	}
	if seat < 1 || seat > airplane.SeatsInRow {
		errs["seat"] = fmt.Errorf("seat must be between 1 and %d", airplane.SeatsInRow)
	}

	return errs.Filter()
}
