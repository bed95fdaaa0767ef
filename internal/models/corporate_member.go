package models

// TableCorporateMember is the store table holding corporate members
const TableCorporateMember = "SocioEmpresa"

// CorporateMember represents an organizational registrant: the managing
// individual's details plus the company's details. No field is unique.
// Fields the client did not send stay nil and are left out of the insert.
type CorporateMember struct {
	MemberType *string `gorm:"column:tipo_socio_empresa" json:"tipo_socio_empresa,omitempty"`

	// Manager
	ManagerNames        *string `gorm:"column:nombres_gerente" json:"nombres_gerente,omitempty"`
	ManagerSurnames     *string `gorm:"column:apellidos_gerente" json:"apellidos_gerente,omitempty"`
	ManagerCedula       *string `gorm:"column:cedula_gerente" json:"cedula_gerente,omitempty"`
	ManagerPhone        *string `gorm:"column:telefono_gerente" json:"telefono_gerente,omitempty"`
	ManagerEmail        *string `gorm:"column:email_gerente" json:"email_gerente,omitempty"`
	ManagerAddress      *string `gorm:"column:direccion_gerente" json:"direccion_gerente,omitempty"`
	ManagerMunicipality *string `gorm:"column:municipio_gerente" json:"municipio_gerente,omitempty"`
	ManagerProvince     *string `gorm:"column:provincia_gerente" json:"provincia_gerente,omitempty"`

	// Company
	LegalName          *string `gorm:"column:razon_social_empresa" json:"razon_social_empresa,omitempty"`
	RNC                *string `gorm:"column:rnc_empresa" json:"rnc_empresa"` // tax id, stored as NULL when empty or absent
	CommercialRegistry *string `gorm:"column:registro_mercantil" json:"registro_mercantil,omitempty"`
	EconomicActivity   *string `gorm:"column:actividad_economica" json:"actividad_economica,omitempty"`
	CompanyAddress     *string `gorm:"column:direccion_empresa" json:"direccion_empresa,omitempty"`
	CompanyPhone       *string `gorm:"column:telefono_empresa" json:"telefono_empresa,omitempty"`
	CompanyEmail       *string `gorm:"column:email_empresa" json:"email_empresa,omitempty"`

	BaseModel
}

// TableName sets the table name for GORM
func (CorporateMember) TableName() string {
	return TableCorporateMember
}
