package request_models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const DefaultPetImageURL = "https://bytegrad.com/course-assets/react-nextjs/pet-placeholder.png"

type PetRequest struct {
	Name      string `json:"name" form:"name"`
	OwnerName string `json:"owner_name" form:"owner_name"`
	ImageURL  string `json:"image_url" form:"image_url"`
	Age       int    `json:"age" form:"age"`
	Notes     string `json:"notes" form:"notes"`
}

// Normalize trims text fields and fills the placeholder image.
// It runs before Validate, so length rules see trimmed values.
func (r *PetRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.OwnerName = strings.TrimSpace(r.OwnerName)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r PetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.RuneLength(1, 100).Error("Name is too long")),
		validation.Field(&r.OwnerName,
			validation.Required.Error("Owner name is required"),
			validation.RuneLength(2, 100).Error("Owner name must be between 2 and 100 characters")),
		validation.Field(&r.ImageURL, is.URL.Error("Image url must be a valid url")),
		validation.Field(&r.Age,
			validation.Required.Error("Age is required"),
			validation.Min(1).Error("Age must be positive"),
			validation.Max(50).Error("Age must be at most 50")),
		validation.Field(&r.Notes,
			validation.RuneLength(0, 1000).Error("Notes should be less than 1000 characters")),
	)
}

func (r PetRequest) ImageOrDefault() string {
	if r.ImageURL == "" {
		return DefaultPetImageURL
	}
	return r.ImageURL
}
