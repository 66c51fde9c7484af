package request_models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthRequest_PasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"short", "hunter22", false},
		{"at bcrypt limit", strings.Repeat("p", 72), false},
		{"over bcrypt limit", strings.Repeat("p", 80), true},
		{"multibyte over limit", strings.Repeat("é", 40), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AuthRequest{Email: "a@x.com", Password: tt.password}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthRequest_NormalizeTrimsEmail(t *testing.T) {
	req := AuthRequest{Email: "  a@x.com ", Password: "hunter22"}
	req.Normalize()
	assert.Equal(t, "a@x.com", req.Email)
	assert.NoError(t, req.Validate())
}
