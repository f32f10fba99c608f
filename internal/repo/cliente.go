package repo

import (
	"ClientAdmin/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrClienteNotFound is returned when a cliente does not exist or is deleted.
var ErrClienteNotFound = errors.New("cliente not found")

// ClienteFilter narrows Listado results. Empty values match everything.
type ClienteFilter struct {
	Nombre         string
	Identificacion string
	UsuarioID      string
}

// ClienteRepository is the cliente access contract for handlers/services.
type ClienteRepository interface {
	List(ctx context.Context, f ClienteFilter) ([]model.Cliente, error)
	GetByID(ctx context.Context, id string) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) (*model.Cliente, error)
	// SoftDelete marks the row deleted; it never removes data.
	SoftDelete(ctx context.Context, id string) error
}

type clienteRepo struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepo{db: db}
}

func (r *clienteRepo) List(ctx context.Context, f ClienteFilter) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("deleted = ?", false)
	if f.UsuarioID != "" {
		q = q.Where("usuario_id = ?", f.UsuarioID)
	}
	if s := strings.TrimSpace(f.Nombre); s != "" {
		// match against the displayed full name, case-insensitive
		pat := "%" + strings.ToLower(s) + "%"
		q = q.Where("lower(nombre || ' ' || apellidos) LIKE ?", pat)
	}
	if s := strings.TrimSpace(f.Identificacion); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		q = q.Where("lower(identificacion) LIKE ?", pat)
	}
	var res []model.Cliente
	if err := q.Order("apellidos, nombre").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *clienteRepo) GetByID(ctx context.Context, id string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error) {
	if c.ID == "" {
		c.ID = newID()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) (*model.Cliente, error) {
	existing, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at", "deleted").
		Updates(c).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrClienteNotFound
	}
	return nil
}
