package domain

type AirplaneType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Airplane struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Rows         int          `json:"rows"`
	SeatsInRow   int          `json:"seats_in_row"`
	AirplaneType AirplaneType `json:"airplane_type"`
}

// Capacity is derived from the seat geometry and changes only when
// rows or seats_in_row change.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
