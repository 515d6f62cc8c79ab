package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/ojt-tracker/internal/db"
	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) UpsertByGoogleSubject(
	ctx context.Context,
	p user.Profile,
) (*models.User, error) {

	u, err := r.findBySubject(ctx, p.Subject)
	if err == nil {
		if err := r.db.WithContext(ctx).Model(u).Updates(map[string]any{
			"email":      p.Email,
			"name":       p.Name,
			"avatar_url": p.Picture,
		}).Error; err != nil {
			return nil, err
		}
		u.Email, u.Name, u.AvatarURL = p.Email, p.Name, p.Picture
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	created := models.User{
		ID:            uuid.NewString(),
		GoogleSubject: p.Subject,
		Email:         p.Email,
		Name:          p.Name,
		AvatarURL:     p.Picture,
	}

	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		// First sign-in raced with another request for the same subject.
		if dbpkg.IsUniqueViolation(err) {
			return r.findBySubject(ctx, p.Subject)
		}
		return nil, err
	}
	return &created, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) findBySubject(ctx context.Context, subject string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("google_subject = ?", subject).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ user.Repository = (*UserGormRepository)(nil)
