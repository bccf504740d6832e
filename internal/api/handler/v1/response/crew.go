package response

import "github.com/vkhomich/airport-api/internal/domain"

type CrewSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Photo    string `json:"photo,omitempty"`
}

func NewCrewSummary(crew domain.Crew) CrewSummary {
	return CrewSummary{
		ID:       crew.ID,
		FullName: crew.FullName(),
		Photo:    crew.Photo,
	}
}

func NewCrewSummaries(crew []domain.Crew) []CrewSummary {
	summaries := make([]CrewSummary, len(crew))
	for i, c := range crew {
		summaries[i] = NewCrewSummary(c)
	}

	return summaries
}
