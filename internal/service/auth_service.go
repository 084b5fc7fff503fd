package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/internal/ws"
	"go-ricemill/pkg/jwt"
)

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserInactive            = errors.New("user account is inactive")
	ErrWrongPassword           = errors.New("current password is incorrect")
	ErrDealerAlreadyRegistered = errors.New("password already set, please login instead")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	DealerRegister(dealerID, password string) (*LoginResponse, error)
	DealerLogin(dealerID, password string) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	Profile(userID uuid.UUID) (*TokenValidationResponse, error)
	Heartbeat(userID uuid.UUID) error
}

type LoginResponse struct {
	Token      string             `json:"token"`
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type TokenValidationResponse struct {
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type authService struct {
	userRepo      repository.UserRepository
	dealerRepo    repository.DealerRepository
	roleRepo      repository.RoleRepository
	privilegeRepo repository.PrivilegeRepository
	wsHub         *ws.Hub
}

func NewAuthService(userRepo repository.UserRepository, dealerRepo repository.DealerRepository,
	roleRepo repository.RoleRepository, privilegeRepo repository.PrivilegeRepository, hub *ws.Hub) AuthService {
	return &authService{
		userRepo:      userRepo,
		dealerRepo:    dealerRepo,
		roleRepo:      roleRepo,
		privilegeRepo: privilegeRepo,
		wsHub:         hub,
	}
}

// Login authenticates a staff account by email + password.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(user, password)
}

// DealerRegister is the one-time password setup for a dealer account. The
// dealer must exist and be active; a synthetic email keeps the unique-email
// constraint satisfied since dealers authenticate by DLR id.
func (s *authService) DealerRegister(dealerID, password string) (*LoginResponse, error) {
	dealer, err := s.dealerRepo.FindActiveByDealerID(dealerID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByDealerID(dealerID); err == nil && existing != nil {
		return nil, ErrDealerAlreadyRegistered
	}

	dealerRole, err := s.roleRepo.FindByCode(model.RoleDealer)
	if err != nil {
		return nil, err
	}
	privileges, err := s.privilegeRepo.FindByCodes(model.DealerPrivilegeCodes)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:      fmt.Sprintf("%s@dealer.local", strings.ToLower(dealerID)),
		FullName:   dealer.DealerName,
		RoleID:     &dealerRole.ID,
		Role:       dealerRole,
		IsActive:   true,
		DealerID:   &dealer.DealerID,
		Privileges: privileges,
	}
	user.CreatedBy = "dealer-register"
	user.UpdatedBy = "dealer-register"
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueSession(user, password)
}

// DealerLogin authenticates a dealer account by DLR id + password.
func (s *authService) DealerLogin(dealerID, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByDealerID(dealerID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Role == nil || user.Role.Code != model.RoleDealer {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(user, password)
}

// issueSession verifies the password, rotates the token version (single
// session per account) and signs a JWT.
func (s *authService) issueSession(user *model.User, password string) (*LoginResponse, error) {
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}
	dealerID := ""
	if user.DealerID != nil {
		dealerID = *user.DealerID
	}

	newTokenVersion := uuid.New().String()
	now := time.Now()
	user.TokenVersion = newTokenVersion
	user.LastSeenAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, roleCode, dealerID,
		user.GetPrivilegeCodes(), newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:      token,
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.userRepo.Update(user)
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// Strict session: the stored token version must match the claim
	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	return &TokenValidationResponse{
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) Profile(userID uuid.UUID) (*TokenValidationResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &TokenValidationResponse{
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) Heartbeat(userID uuid.UUID) error {
	if err := s.userRepo.UpdateLastSeen(userID); err != nil {
		return err
	}

	go func() {
		payload := map[string]interface{}{
			"type":         "user_status_update",
			"user_id":      userID.String(),
			"status":       "online",
			"last_seen_at": time.Now(),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return nil
}
