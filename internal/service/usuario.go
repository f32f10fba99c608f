package service

import (
	"ClientAdmin/internal/model"
	"ClientAdmin/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken: registration with an already used username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials: unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UsuarioService implements account registration and credential checks.
type UsuarioService struct {
	repo repo.UsuarioRepository
}

func NewUsuarioService(r repo.UsuarioRepository) *UsuarioService {
	return &UsuarioService{repo: r}
}

// Register creates an account with a bcrypt password hash.
func (s *UsuarioService) Register(ctx context.Context, username, email, password string) (*model.Usuario, error) {
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u := &model.Usuario{Username: username, Email: email, Password: string(hash)}
	created, err := s.repo.CreateUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creating usuario: %w", err)
	}
	return created, nil
}

// Login verifies credentials and returns the account on success.
func (s *UsuarioService) Login(ctx context.Context, username, password string) (*model.Usuario, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching usuario: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
