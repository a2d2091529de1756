package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/sanitize"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios (endpoints solo-admin).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create da de alta un usuario. Username único, rol conocido y contraseña
// que cumpla la política (mínimo 8, con dígito, mayúscula y minúscula).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) error {
	username := sanitize.Text(in.Username)
	role := strings.ToLower(sanitize.Text(in.Role))
	if username == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	if !ValidPassword(in.Password) {
		return domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	})
}

// List devuelve los usuarios sin el hash de contraseña.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format("02-01-2006 15:04"),
		})
	}
	return out, nil
}

// Delete elimina un usuario. La auto-eliminación está prohibida, incluso
// para admins.
func (uc *UserUseCase) Delete(id, requestedBy string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Username == requestedBy {
		return domain.ErrSelfDelete
	}
	return uc.userRepo.Delete(id)
}

// ValidPassword aplica la política de contraseñas: mínimo 8 caracteres con
// al menos un dígito, una mayúscula y una minúscula.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var digit, upper, lower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return digit && upper && lower
}
