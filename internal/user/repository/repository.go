// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/dberr"
	"github.com/festy23/fantasy_league/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// CreateVerification stores the user's verification code.
	CreateVerification(ctx context.Context, v *model.EmailVerification) error

	// GetVerification returns the verification record of a user.
	GetVerification(ctx context.Context, userID int64) (*model.EmailVerification, error)

	// SetVerified updates the user's verification flag.
	SetVerified(ctx context.Context, userID int64, verified bool) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			r.logger.Debugw("Create user duplicate", "email", user.Email)
			return model.ErrEmailTaken
		}
		r.logger.Errorw("Create user database error", "email", user.Email, "error", err)
		return err
	}
	return nil
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

// CreateVerification stores the user's verification code.
func (r *repository) CreateVerification(ctx context.Context, v *model.EmailVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// GetVerification returns the verification record of a user.
func (r *repository) GetVerification(ctx context.Context, userID int64) (*model.EmailVerification, error) {
	var v model.EmailVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&v).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &v, nil
}

// SetVerified updates the user's verification flag.
func (r *repository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.EmailVerification{}).
		Where("user_id = ?", userID).
		Update("is_verified", verified)

	if result.Error != nil {
		r.logger.Errorw("SetVerified database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
