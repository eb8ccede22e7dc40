package validation_test

import (
	"testing"

	"github.com/ferdiebergado/inkwell/internal/platform/validation"
)

type registerInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,password"`
	PasswordConfirm string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func TestPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      registerInput
		wantFields []string
	}{
		{
			name: "valid input",
			input: registerInput{
				Email:           "juan@example.com",
				Password:        "hunter2A",
				PasswordConfirm: "hunter2A",
			},
		},
		{
			name: "invalid email",
			input: registerInput{
				Email:           "not-an-email",
				Password:        "hunter2A",
				PasswordConfirm: "hunter2A",
			},
			wantFields: []string{"email"},
		},
		{
			name: "password without uppercase",
			input: registerInput{
				Email:           "juan@example.com",
				Password:        "hunter222",
				PasswordConfirm: "hunter222",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password without digit",
			input: registerInput{
				Email:           "juan@example.com",
				Password:        "hunterAAA",
				PasswordConfirm: "hunterAAA",
			},
			wantFields: []string{"password"},
		},
		{
			name: "mismatched confirmation",
			input: registerInput{
				Email:           "juan@example.com",
				Password:        "hunter2A",
				PasswordConfirm: "different2A",
			},
			wantFields: []string{"confirm_password"},
		},
	}

	validator := validation.NewPlaygroundValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validator.ValidateStruct(tt.input)

			if len(tt.wantFields) == 0 {
				if len(errs) != 0 {
					t.Fatalf("ValidateStruct() = %v, want no errors", errs)
				}
				return
			}

			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("ValidateStruct() missing error for field %q, got %v", field, errs)
				}
			}
		})
	}
}
