package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
	"github.com/phonefixpro/phonefix-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el username o el email ya existen.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
