package domain

type Airport struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	LocationCity   string `json:"location_city"`
	ClosestBigCity string `json:"closest_big_city,omitempty"`
}
