package response_models

type PetResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
	ImageURL  string `json:"image_url"`
	Age       int    `json:"age"`
	Notes     string `json:"notes"`
}

type DashboardResponse struct {
	Pets       []PetResponse `json:"pets"`
	GuestCount int           `json:"guest_count"`
	AverageAge float64       `json:"average_age"`
}
