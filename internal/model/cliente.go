package model

import "time"

// Cliente is a tracked person owned by a Usuario. JSON field names are the
// wire contract of the console and must not be renamed.
type Cliente struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	Nombre          string    `gorm:"size:50;not null" json:"nombre"`
	Apellidos       string    `gorm:"size:100;not null" json:"apellidos"`
	Identificacion  string    `gorm:"size:20;not null;index" json:"identificacion"`
	TelefonoCelular string    `gorm:"size:20;not null" json:"telefonoCelular"`
	OtroTelefono    string    `gorm:"size:20;not null" json:"otroTelefono"`
	Direccion       string    `gorm:"size:200;not null" json:"direccion"`
	FNacimiento     time.Time `gorm:"not null" json:"fNacimiento"`
	FAfiliacion     time.Time `gorm:"not null" json:"fAfiliacion"`
	Sexo            string    `gorm:"size:1;not null" json:"sexo"` // M | F
	ResenaPersonal  string    `gorm:"size:200;not null" json:"resenaPersonal"`
	Imagen          string    `gorm:"type:text" json:"imagen"` // base64 data URL, empty when absent

	// Fetch responses expose the interest FK as "interesesId".
	InteresesID string   `gorm:"type:uuid;not null;index" json:"interesesId"`
	Interes     *Interes `gorm:"foreignKey:InteresesID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	UsuarioID string   `gorm:"type:uuid;not null;index" json:"usuarioId"`
	Usuario   *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Eliminar marks rows deleted instead of removing them.
	Deleted bool `gorm:"not null;default:false" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
