package models

// IndividualRegistrationRequest is the body of POST /registrar-socio-individual.
// Optional fields are pointers so an absent field can be told apart from "".
type IndividualRegistrationRequest struct {
	Names           string  `json:"nombres"`
	Surnames        string  `json:"apellidos"`
	Cedula          string  `json:"cedula"`
	Phone           string  `json:"telefono"`
	Email           string  `json:"email"`
	Address         *string `json:"direccion"`
	City            *string `json:"ciudad"`
	StateProvince   *string `json:"estado_provincia"`
	Country         *string `json:"pais"`
	AffiliationCity *string `json:"afiliacion_ciudad"`
}

// CorporateRegistrationRequest is the body of POST /registrar-socio-empresa.
// Every field is optional.
type CorporateRegistrationRequest struct {
	MemberType          *string `json:"tipo_socio_empresa"`
	ManagerNames        *string `json:"nombres_gerente"`
	ManagerSurnames     *string `json:"apellidos_gerente"`
	ManagerCedula       *string `json:"cedula_gerente"`
	ManagerPhone        *string `json:"telefono_gerente"`
	ManagerEmail        *string `json:"email_gerente"`
	ManagerAddress      *string `json:"direccion_gerente"`
	ManagerMunicipality *string `json:"municipio_gerente"`
	ManagerProvince     *string `json:"provincia_gerente"`
	LegalName           *string `json:"razon_social_empresa"`
	RNC                 *string `json:"rnc_empresa"`
	CommercialRegistry  *string `json:"registro_mercantil"`
	EconomicActivity    *string `json:"actividad_economica"`
	CompanyAddress      *string `json:"direccion_empresa"`
	CompanyPhone        *string `json:"telefono_empresa"`
	CompanyEmail        *string `json:"email_empresa"`
}

// MessageResponse is the success body of both registration endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Store   string `json:"store"`
	Error   string `json:"error,omitempty"`
}
