package request_models

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"petsoft/pkg/utils"
)

// AuthRequest backs both login and signup; the original forms share one schema.
type AuthRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginRequest = AuthRequest

type SignUpRequest = AuthRequest

func (r *AuthRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(1, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(utils.MaxPasswordBytes))),
	)
}

// maxBytes limits encoded length; bcrypt counts bytes, not runes.
func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes", limit)
		}
		return nil
	}
}
