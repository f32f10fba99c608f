package model

// Interes is read-only reference data shown in the client form.
type Interes struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Descripcion string `gorm:"not null" json:"descripcion"`
}
