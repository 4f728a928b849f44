package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/milsabores/pasteleria-api/internal/application/auth"
	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

// UserUseCase gestión de cuentas: perfil, listado admin y cambio de contraseña.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene el perfil de un usuario (sin hash).
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación (solo admin; el gate está en la ruta).
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Update actualiza los campos editables del perfil. Si cambia la fecha de
// nacimiento se recalculan edad y descuento senior.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Apellidos != nil {
		user.Apellidos = *in.Apellidos
	}
	if in.Telefono != nil {
		user.Telefono = *in.Telefono
	}
	if in.Region != nil {
		user.Region = *in.Region
	}
	if in.FechaNacimiento != nil {
		fn, err := time.Parse("2006-01-02", *in.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_nacimiento debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		user.FechaNacimiento = &fn
		edad := ageAt(fn, time.Now())
		user.Edad = &edad
		user.DescuentoSenior = edad >= 50
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ChangePassword cambia la contraseña verificando primero la actual.
// La operación es solo para el dueño de la cuenta (el handler lo garantiza);
// los tokens ya emitidos siguen siendo válidos hasta su expiración.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return fmt.Errorf("%w: contraseña actual y nueva son obligatorias", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, id, string(hash))
}

// Delete elimina una cuenta (solo admin; el gate está en la ruta).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ageAt calcula la edad en años cumplidos a la fecha de referencia.
func ageAt(nacimiento, ref time.Time) int {
	edad := ref.Year() - nacimiento.Year()
	if ref.Month() < nacimiento.Month() ||
		(ref.Month() == nacimiento.Month() && ref.Day() < nacimiento.Day()) {
		edad--
	}
	return edad
}
