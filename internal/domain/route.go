package domain

import "fmt"

// Route is directional: (A, B) and (B, A) are distinct routes.
type Route struct {
	ID          uint    `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

func (r Route) Info() string {
	return fmt.Sprintf("%v -> %v", r.Source.LocationCity, r.Destination.LocationCity)
}
