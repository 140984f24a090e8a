package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo is recorded on the session created at login.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, sessionToken uuid.UUID) error
	Authenticate(ctx context.Context, token string) (actor Actor, sessionToken uuid.UUID, err error)
	Me(ctx context.Context, actor Actor) (*response.UserResponse, error)
}

type authService struct {
	repo    *repository.Repository
	tokens  utils.TokenManager
	expiry  time.Duration
	timeout time.Duration
	log     *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, tokens utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		repo:    repo,
		tokens:  tokens,
		expiry:  time.Duration(config.JWT.ExpiryHours) * time.Hour,
		timeout: config.App.StorageTimeout,
		log:     log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	role := entity.RolePlayer
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, storageError("create user", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	// Registration logs the user straight in.
	return s.issue(ctx, user, client)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, storageError("find user by email", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issue(ctx, user, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Session.Revoke(ctx, sessionToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("session")
		}
		return storageError("revoke session", err)
	}

	s.log.Info("User logged out")
	return nil
}

// Authenticate verifies the signature of an access token and that its
// session is still live. The returned session token is the token's jti.
func (s *authService) Authenticate(ctx context.Context, token string) (Actor, uuid.UUID, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return Actor{}, uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Actor{}, uuid.Nil, utils.ErrInvalidToken
	}
	sessionToken, err := uuid.Parse(claims.ID)
	if err != nil {
		return Actor{}, uuid.Nil, utils.ErrInvalidToken
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session, err := s.repo.Session.FindValidSession(ctx, sessionToken)
	if err != nil {
		return Actor{}, uuid.Nil, storageError("find session", err)
	}
	if session == nil || !session.Live(time.Now()) || session.UserID != userID {
		return Actor{}, uuid.Nil, utils.ErrInvalidToken
	}

	return Actor{UserID: userID, Role: entity.UserRole(claims.Role)}, sessionToken, nil
}

func (s *authService) Me(ctx context.Context, actor Actor) (*response.UserResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.User.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if user == nil {
		return nil, notFound("user")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// issue opens a session and signs an access token bound to it.
func (s *authService) issue(ctx context.Context, user *entity.User, client ClientInfo) (*response.AuthResponse, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(s.expiry),
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, storageError("create session", err)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role), session.Token, session.ExpiresAt)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	return &response.AuthResponse{
		UserID:    user.ID.String(),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
	}, nil
}
