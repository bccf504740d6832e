package response

import (
	"time"

	"github.com/vkhomich/airport-api/internal/domain"
)

// TicketCreated echoes a booked ticket on order creation.
type TicketCreated struct {
	ID     uint `json:"id"`
	Flight uint `json:"flight"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
}

// TicketSummary is the order-list projection of one ticket.
type TicketSummary struct {
	ID            uint      `json:"id"`
	Flight        string    `json:"flight"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// TicketDetail is the order-retrieve projection of one ticket.
type TicketDetail struct {
	ID           uint   `json:"id"`
	Flight       string `json:"flight"`
	AirplaneType string `json:"airplane_type"`
	AirplaneName string `json:"airplane_name"`
	Row          int    `json:"row"`
	Seat         int    `json:"seat"`
}

type OrderCreated struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Tickets   []TicketCreated `json:"tickets"`
}

type OrderSummary struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Tickets   []TicketSummary `json:"tickets"`
}

type OrderDetail struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Tickets   []TicketDetail `json:"tickets"`
}

type OrderListResponse struct {
	Count   int64          `json:"count"`
	Results []OrderSummary `json:"results"`
}

func NewOrderCreated(order domain.Order) OrderCreated {
	tickets := make([]TicketCreated, len(order.Tickets))
	for i, t := range order.Tickets {
		tickets[i] = TicketCreated{
			ID:     t.ID,
			Flight: t.Flight.ID,
			Row:    t.Row,
			Seat:   t.Seat,
		}
	}

	return OrderCreated{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func NewOrderSummary(order domain.Order) OrderSummary {
	tickets := make([]TicketSummary, len(order.Tickets))
	for i, t := range order.Tickets {
		tickets[i] = TicketSummary{
			ID:            t.ID,
			Flight:        t.Flight.Info(),
			DepartureTime: t.Flight.DepartureTime,
			ArrivalTime:   t.Flight.ArrivalTime,
		}
	}

	return OrderSummary{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func NewOrderList(orders []domain.Order, total int64) OrderListResponse {
	summaries := make([]OrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = NewOrderSummary(order)
	}

	return OrderListResponse{
		Count:   total,
		Results: summaries,
	}
}

func NewOrderDetail(order domain.Order) OrderDetail {
	tickets := make([]TicketDetail, len(order.Tickets))
	for i, t := range order.Tickets {
		tickets[i] = TicketDetail{
			ID:           t.ID,
			Flight:       t.Flight.Info(),
			AirplaneType: t.Flight.Airplane.AirplaneType.Name,
			AirplaneName: t.Flight.Airplane.Name,
			Row:          t.Row,
			Seat:         t.Seat,
		}
	}

	return OrderDetail{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}
