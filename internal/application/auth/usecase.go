package auth

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase caso de uso de autenticación: login contra el credential store.
// El logout no toca estado del servidor (el token es stateless y sin lista de
// revocación: un token robado sigue siendo válido hasta su expiración natural).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite el token de sesión (24h fijas).
// Cualquier combinación inválida devuelve ErrUnauthorized sin distinguir si
// el usuario existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.UserInfoDTO, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.UserInfoDTO{Username: user.Username, Role: user.Role}, nil
}
