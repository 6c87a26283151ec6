package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/pkg/jwt"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

// MaxPasswordBytes límite de bcrypt para la contraseña.
const MaxPasswordBytes = 72

// JWTConfig configuración para generación de tokens. ExpMinutes también es la vida de la sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y sesión actual.
type AuthUseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, sessions repository.SessionRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		log:      log.Component("auth"),
		now:      time.Now,
	}
}

// Signup crea una cuenta. Verifica primero que el usuario esté libre y luego que las
// contraseñas coincidan. El password se guarda con bcrypt (con sal), nunca en claro.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AccountResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrValidation)
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol %q no válido", domain.ErrValidation, in.Role)
	}

	existing, err := uc.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, fmt.Errorf("%w: la contraseña no puede superar %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := uc.now()
	account := &entity.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Str("role", role).Msg("cuenta creada")
	return &dto.AccountResponse{Username: account.Username, Role: account.Role, CreatedAt: account.CreatedAt}, nil
}

// Login verifica credenciales, abre una sesión (restaurando el dataset guardado si existe)
// y devuelve el token que la referencia.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	account, err := uc.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrBadPassword
	}

	role := account.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	now := uc.now()
	session := &entity.Session{
		ID:          uuid.New().String(),
		LoggedIn:    true,
		CurrentUser: account.Username,
		Role:        role,
		Data:        account.Dataset.Clone(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, session.CurrentUser, session.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	restored := session.Data != nil
	uc.log.Info().Str("username", account.Username).Bool("dataset_restored", restored).Msg("inicio de sesión")
	return &dto.LoginResponse{
		Token:           token,
		ExpiresAt:       session.ExpiresAt,
		Session:         toSessionResponse(session),
		DatasetRestored: restored,
	}, nil
}

// Logout destruye la sesión. Cerrar una sesión ya inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	err := uc.sessions.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Me devuelve la vista de la sesión actual.
func (uc *AuthUseCase) Me(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := toSessionResponse(session)
	return &out, nil
}

func toSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:   s.ID,
		LoggedIn:    s.LoggedIn,
		CurrentUser: s.CurrentUser,
		Role:        s.Role,
		HasDataset:  s.Data != nil,
		Rows:        s.Data.Len(),
		ExpiresAt:   s.ExpiresAt,
	}
}
