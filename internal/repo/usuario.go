package repo

import (
	"ClientAdmin/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID() string { return uuid.NewString() }

// UsuarioRepository is the minimal account access contract for the service layer.
type UsuarioRepository interface {
	// CreateUsuario inserts a new account and returns it with the assigned ID.
	CreateUsuario(ctx context.Context, u *model.Usuario) (*model.Usuario, error)

	// GetByUsername returns the account with the given username, or (nil, nil)
	// when no such account exists.
	GetByUsername(ctx context.Context, username string) (*model.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) CreateUsuario(ctx context.Context, u *model.Usuario) (*model.Usuario, error) {
	if u.ID == "" {
		u.ID = newID()
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *usuarioRepo) GetByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
