package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vkhomich/airport-api/internal/domain"
)

type OrderTicketRequest struct {
	FlightID uint `json:"flight"`
	Row      int  `json:"row"`
	Seat     int  `json:"seat"`
}

type CreateOrderRequest struct {
	Tickets []OrderTicketRequest `json:"tickets"`
}

func (req *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Tickets, validation.Required),
	)
}

func (req *CreateOrderRequest) ToDomain() []domain.TicketRequest {
	tickets := make([]domain.TicketRequest, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, domain.TicketRequest{
			FlightID: t.FlightID,
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}
	return tickets
}
