package response

import "github.com/vkhomich/airport-api/internal/domain"

type AirplaneSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	AirplaneType string `json:"airplane_type"`
}

type AirplaneDetail struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Rows         int                 `json:"rows"`
	SeatsInRow   int                 `json:"seats_in_row"`
	Capacity     int                 `json:"capacity"`
	AirplaneType domain.AirplaneType `json:"airplane_type"`
}

func NewAirplaneSummary(airplane domain.Airplane) AirplaneSummary {
	return AirplaneSummary{
		ID:           airplane.ID,
		Name:         airplane.Name,
		AirplaneType: airplane.AirplaneType.Name,
	}
}

func NewAirplaneSummaries(airplanes []domain.Airplane) []AirplaneSummary {
	summaries := make([]AirplaneSummary, len(airplanes))
	for i, airplane := range airplanes {
		summaries[i] = NewAirplaneSummary(airplane)
	}

	return summaries
}

func NewAirplaneDetail(airplane domain.Airplane) AirplaneDetail {
	return AirplaneDetail{
		ID:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		Capacity:     airplane.Capacity(),
		AirplaneType: airplane.AirplaneType,
	}
}
