package models

// TableIndividualMember is the store table holding individual members
const TableIndividualMember = "SocioIndividual"

// IndividualMember represents a natural-person registrant.
// Cedula is unique across stored rows, but only the registration
// workflow's read-before-write check enforces that. Optional fields are nil
// when the client did not send them; an explicit "" is kept.
type IndividualMember struct {
	Names           string  `gorm:"column:nombres" json:"nombres"`
	Surnames        string  `gorm:"column:apellidos" json:"apellidos"`
	Cedula          string  `gorm:"column:cedula;index" json:"cedula"`
	Phone           string  `gorm:"column:telefono" json:"telefono"`
	Email           string  `gorm:"column:email" json:"email"`
	Address         *string `gorm:"column:direccion" json:"direccion,omitempty"`
	City            *string `gorm:"column:ciudad" json:"ciudad,omitempty"`
	StateProvince   *string `gorm:"column:estado_provincia" json:"estado_provincia,omitempty"`
	Country         *string `gorm:"column:pais" json:"pais,omitempty"`
	AffiliationCity *string `gorm:"column:afiliacion_ciudad" json:"afiliacion_ciudad,omitempty"`
	BaseModel
}

// TableName sets the table name for GORM
func (IndividualMember) TableName() string {
	return TableIndividualMember
}
