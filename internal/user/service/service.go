// Package service provides business logic layer for user module.
package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/atomic"
	"github.com/festy23/fantasy_league/internal/notify"
	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	"github.com/festy23/fantasy_league/internal/user/model"
	"github.com/festy23/fantasy_league/internal/user/repository"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Service defines the interface for user business logic operations.
type Service interface {
	// Signup creates an account with a generated team and sends the
	// verification e-mail once both are stored.
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)

	// SendVerificationLink sends the verification e-mail again.
	SendVerificationLink(ctx context.Context, userID int64) error

	// Verify marks the user's e-mail as verified when code matches.
	Verify(ctx context.Context, userID int64, code string) (*model.VerifyResponse, error)

	// GenerateTeam replaces the user's team with a freshly generated one.
	GenerateTeam(ctx context.Context, userID int64) (*model.GenerateResponse, error)
}

// Mailer sends user-facing e-mails.
type Mailer interface {
	SendVerification(to notify.Recipient, code string) error
}

// TeamGenerator replaces an owner's team inside an open transaction.
type TeamGenerator interface {
	GenerateTeam(ctx context.Context, tx *gorm.DB, ownerID int64, ownerName string) (*teamModel.Team, []playerModel.Player, error)
}

// Config holds user service dependencies.
type Config struct {
	Mailer Mailer
	Teams  TeamGenerator
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	mailer Mailer
	teams  TeamGenerator
	cost   int
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, db *gorm.DB, cfg Config, logger *zap.SugaredLogger) Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:   repo,
		db:     db,
		mailer: cfg.Mailer,
		teams:  cfg.Teams,
		cost:   cfg.BcryptCost,
		logger: logger,
	}
}

func newVerificationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Signup creates an account with a generated team.
func (s *service) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil || addr.Name != "" {
		return nil, model.ErrInvalidEmail
	}
	email := strings.ToLower(addr.Address)

	if len(req.Password) < MinPasswordLength {
		return nil, model.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	code := newVerificationCode()

	var team *teamModel.Team
	err = atomic.Run(ctx, s.db, func(tx *gorm.DB, hooks *atomic.Hooks) error {
		users := repository.New(tx, s.logger)

		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := users.CreateVerification(ctx, &model.EmailVerification{UserID: user.ID, Code: code}); err != nil {
			return fmt.Errorf("create verification: %w", err)
		}

		var err error
		team, _, err = s.teams.GenerateTeam(ctx, tx, user.ID, user.FirstName)
		if err != nil {
			return err
		}

		hooks.AfterCommit(func() {
			s.sendVerification(user, team.Name, code)
		})
		return nil
	})
	if err != nil {
		s.logger.Debugw("Signup failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Infow("Signup completed", "user_id", user.ID, "team_id", team.ID)
	return &model.SignupResponse{User: *user, TeamID: team.ID}, nil
}

// sendVerification queues the e-mail. A full queue is logged, not returned:
// the account exists and the user can ask for the link again.
func (s *service) sendVerification(user *model.User, teamName, code string) {
	err := s.mailer.SendVerification(notify.Recipient{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.DisplayName(),
		TeamName: teamName,
	}, code)
	if err != nil {
		s.logger.Warnw("verification email not queued", "user_id", user.ID, "error", err)
	}
}

// SendVerificationLink sends the verification e-mail again.
func (s *service) SendVerificationLink(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return model.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	v, err := s.repo.GetVerification(ctx, userID)
	if err != nil {
		return err
	}
	if v.IsVerified {
		return model.ErrAlreadyVerified
	}

	return s.mailer.SendVerification(notify.Recipient{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName(),
	}, v.Code)
}

// Verify sets the verification flag to whether code matches the stored one.
func (s *service) Verify(ctx context.Context, userID int64, code string) (*model.VerifyResponse, error) {
	if userID <= 0 {
		return nil, model.ErrInvalidUserID
	}

	v, err := s.repo.GetVerification(ctx, userID)
	if err != nil {
		return nil, err
	}

	verified := subtle.ConstantTimeCompare([]byte(code), []byte(v.Code)) == 1
	if err := s.repo.SetVerified(ctx, userID, verified); err != nil {
		return nil, err
	}

	if !verified {
		s.logger.Debugw("Verify code mismatch", "user_id", userID)
		return nil, model.ErrInvalidVerificationCode
	}

	s.logger.Infow("Verify completed", "user_id", userID)
	return &model.VerifyResponse{UserID: userID, IsVerified: true}, nil
}

// GenerateTeam replaces the user's team with a freshly generated one.
func (s *service) GenerateTeam(ctx context.Context, userID int64) (*model.GenerateResponse, error) {
	if userID <= 0 {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var resp *model.GenerateResponse
	err = atomic.Run(ctx, s.db, func(tx *gorm.DB, _ *atomic.Hooks) error {
		team, players, err := s.teams.GenerateTeam(ctx, tx, user.ID, user.FirstName)
		if err != nil {
			return err
		}
		resp = &model.GenerateResponse{
			TeamID:  team.ID,
			Name:    team.Name,
			Country: team.Country,
			Players: len(players),
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("GenerateTeam failed", "user_id", userID, "error", err)
		return nil, err
	}

	return resp, nil
}
