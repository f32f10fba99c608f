package repo

import (
	"ClientAdmin/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB opens the database and runs migrations. A postgres DSN takes
// precedence; without one the server falls back to a local SQLite file
// (pure-Go driver, no cgo).
func InitDB(dsn, sqlitePath string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn != "" {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: sqlitePath}
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Usuario{}, &model.Interes{}, &model.Cliente{}); err != nil {
		return nil, err
	}
	if err := seedIntereses(db); err != nil {
		return nil, err
	}
	return db, nil
}

// defaultIntereses is the reference data served by /api/Intereses/Listado.
var defaultIntereses = []string{
	"Deportes",
	"Música",
	"Tecnología",
	"Lectura",
	"Viajes",
	"Cocina",
}

func seedIntereses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Interes{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, d := range defaultIntereses {
		in := model.Interes{ID: newID(), Descripcion: d}
		if err := db.Create(&in).Error; err != nil {
			return err
		}
	}
	return nil
}
