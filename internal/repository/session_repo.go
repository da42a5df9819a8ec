package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id;index"`
	SessionToken string    `gorm:"column:session_token;index"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	return &domain.Session{
		ID:           m.ID,
		UserID:       m.UserID,
		SessionToken: m.SessionToken,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := sessionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		SessionToken: s.SessionToken,
		ExpiresAt:    s.ExpiresAt,
		CreatedAt:    s.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).Where("session_token = ?", token).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

// DeleteByToken removes every session carrying the token. Deleting a
// token that never existed is not an error.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&sessionModel{}).Error
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("expires_at < ?", time.Now().UTC()).Delete(&sessionModel{}).Error
}
