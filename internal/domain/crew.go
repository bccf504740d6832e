package domain

import "fmt"

type Crew struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo,omitempty"`
}

func (c Crew) FullName() string {
	return fmt.Sprintf("%v %v", c.FirstName, c.LastName)
}
