package repository

import (
	"context"
	"strings"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	PasswordHash *string   `gorm:"column:password_hash"`
	Picture      *string   `gorm:"column:picture"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var hash, picture string
	if m.PasswordHash != nil {
		hash = *m.PasswordHash
	}
	if m.Picture != nil {
		picture = *m.Picture
	}

	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         domain.Role(m.Role),
		PasswordHash: hash,
		Picture:      picture,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	email := strings.TrimSpace(strings.ToLower(u.Email))

	var hash, picture *string
	if u.PasswordHash != "" {
		v := u.PasswordHash
		hash = &v
	}
	if u.Picture != "" {
		v := u.Picture
		picture = &v
	}

	return userModel{
		ID:           u.ID,
		Email:        email,
		Name:         u.Name,
		Role:         string(u.Role),
		PasswordHash: hash,
		Picture:      picture,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		u := toDomainUser(m)
		u.PasswordHash = ""
		out = append(out, *u)
	}
	return out, nil
}

// UpdateFields applies a partial update. Returns gorm.ErrRecordNotFound
// when the id does not exist.
func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate blocks authentication but preserves history; users are
// never hard-deleted.
func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	return r.UpdateFields(ctx, id, map[string]any{"is_active": false})
}
