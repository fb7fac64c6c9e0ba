package usecase

import (
	"context"
	"time"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/dto/request"
	"customer-crm/internal/dto/response"
	"customer-crm/pkg/gate"
	"customer-crm/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMeta describes the client a session is issued to.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Identify(ctx context.Context, token string) (*gate.Identity, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	// 2. User + Customer + group dalam satu transaksi
	user, err := s.createUserWithProfile(ctx, req.Username, req.Email, req.Password1, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.createUserWithProfile(ctx, req.Username, req.Email, req.Password, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// createUserWithProfile writes a User, its group membership and its Customer
// in one transaction. The Customer starts with the username as its name.
func (s *authService) createUserWithProfile(ctx context.Context, username, email, password string, role entity.UserRole) (*entity.User, error) {
	existing, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return nil, apperr.Wrap(err, "failed to check username")
	}
	if existing != nil {
		return nil, usernameTaken()
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: user.ID,
		Name:   user.Username,
		Email:  utils.OptionalString(email),
	}

	err = s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		if err := tx.Group.AddUser(ctx, user.ID, role.String()); err != nil {
			return err
		}
		return tx.Customer.Create(ctx, customer)
	})
	// Insert bersamaan dengan username yang sama
	if apperr.Is(err, repository.ErrDuplicateUsername) {
		s.log.Warn("Username taken during sign-up", zap.String("username", username))
		return nil, usernameTaken()
	}
	if err != nil {
		s.log.Error("Failed to create user with profile",
			zap.Error(err),
			zap.String("username", username),
			zap.String("role", role.String()))
		return nil, apperr.Wrap(err, "failed to create account")
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	// 1. Validasi
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Cari user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Wrap(err, "failed to find user")
	}

	// 3. Cek password
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, apperr.ErrInvalidCredentials
	}

	// 4. Cek user aktif
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperr.ErrInactive
	}

	// 5. Buat session
	session, err := s.createSession(ctx, user.ID, meta)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Wrap(err, "failed to create session")
	}

	if err := s.repo.User.UpdateLastLogin(ctx, user.ID, session.CreatedAt); err != nil {
		s.log.Warn("Failed to update last login", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	groups, err := s.repo.Group.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to load groups", zap.Error(err), zap.String("user_id", user.ID.String()))
	}
	role, _ := gate.ResolveRole(groups)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, role, session)
	return &resp, nil
}

// Logout revokes the session behind token. Unknown or malformed tokens are
// already logged out and return nil.
func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID.String())
	if err != nil {
		return apperr.Wrap(err, "failed to logout")
	}
	if session == nil {
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return apperr.Wrap(err, "failed to logout")
	}

	s.log.Info("User logged out", zap.String("user_id", session.UserID.String()))
	return nil
}

// Identify resolves a session token to an identity. It returns nil, nil for
// anything that does not name a live session of an active user.
func (s *authService) Identify(ctx context.Context, token string) (*gate.Identity, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID.String())
	if err != nil {
		return nil, apperr.Wrap(err, "failed to find session")
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to find session user")
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	groups, err := s.repo.Group.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to find user groups")
	}

	return &gate.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Groups:   groups,
	}, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, meta SessionMeta) (*entity.Session, error) {
	ttl := time.Duration(s.config.Session.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		UserAgent: utils.OptionalString(meta.UserAgent),
		IPAddress: utils.OptionalString(meta.IPAddress),
		ExpiresAt: now.Add(ttl),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func usernameTaken() error {
	return apperr.NewValidationError(map[string]string{
		"username": "A user with that username already exists",
	})
}
