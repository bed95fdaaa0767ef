package registration

import (
	"errors"
	"testing"

	"github.com/coopebred/registro-socios/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIndividual() *models.IndividualRegistrationRequest {
	return &models.IndividualRegistrationRequest{
		Names:    "Ana",
		Surnames: "Pérez",
		Cedula:   "001",
		Phone:    "809",
		Email:    "a@x.com",
	}
}

func TestValidateIndividual(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.IndividualRegistrationRequest)
		missing []string
	}{
		{"all required present", func(r *models.IndividualRegistrationRequest) {}, nil},
		{"missing nombres", func(r *models.IndividualRegistrationRequest) { r.Names = "" }, []string{"nombres"}},
		{"missing apellidos", func(r *models.IndividualRegistrationRequest) { r.Surnames = "" }, []string{"apellidos"}},
		{"missing cedula", func(r *models.IndividualRegistrationRequest) { r.Cedula = "" }, []string{"cedula"}},
		{"missing telefono", func(r *models.IndividualRegistrationRequest) { r.Phone = "" }, []string{"telefono"}},
		{"missing email", func(r *models.IndividualRegistrationRequest) { r.Email = "" }, []string{"email"}},
		{"whitespace counts as present", func(r *models.IndividualRegistrationRequest) { r.Names = "   " }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validIndividual()
			tt.mutate(req)

			err := ValidateIndividual(req)
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, MsgMissingFields, err.Error())
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.missing, vErr.Missing)
		})
	}
}

func TestValidateIndividual_OnlyNames(t *testing.T) {
	err := ValidateIndividual(&models.IndividualRegistrationRequest{Names: "Ana"})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"apellidos", "cedula", "telefono", "email"}, vErr.Missing)
}

func TestValidateIndividual_OptionalFieldsIgnored(t *testing.T) {
	req := validIndividual()
	req.City = nil
	req.Country = nil
	assert.NoError(t, ValidateIndividual(req))
}
