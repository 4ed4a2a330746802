package postgres

import (
	"context"

	"github.com/dom/securecart/internal/domain"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetWithAdmin(ctx context.Context, id string) (*domain.Session, bool, error) {
	var row struct {
		domain.Session
		IsAdmin bool
	}
	err := r.db.WithContext(ctx).Model(&domain.Session{}).
		Select("sessions.*, users.is_admin").
		Joins("JOIN users ON users.id = sessions.user_id").
		Where("sessions.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, false, err
	}
	return &row.Session, row.IsAdmin, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id).Error
}
