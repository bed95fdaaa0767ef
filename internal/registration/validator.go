package registration

import "github.com/coopebred/registro-socios/internal/models"

// ValidateIndividual checks that nombres, apellidos, cedula, telefono and email
// are non-empty. Whitespace-only values count as present.
func ValidateIndividual(req *models.IndividualRegistrationRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"nombres", req.Names},
		{"apellidos", req.Surnames},
		{"cedula", req.Cedula},
		{"telefono", req.Phone},
		{"email", req.Email},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
