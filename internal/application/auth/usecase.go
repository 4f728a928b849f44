// Package auth casos de uso de autenticación: registro, login y emisión de tokens.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
	"github.com/milsabores/pasteleria-api/pkg/token"
)

// Dominio de correo institucional que marca a un usuario como estudiante DUOC.
const duocDomain = "@duocuc.cl"

// Edad mínima para el descuento senior.
const seniorAge = 50

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: deriva edad, descuento senior y marca de
// estudiante, hashea la contraseña con bcrypt y persiste. El chequeo previo de
// email existente es solo el camino rápido amigable; la garantía real es el
// índice único de la base de datos.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Nombre == "" || in.Apellidos == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nombre, apellidos, email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
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

	var fechaNacimiento *time.Time
	var edad *int
	descuentoSenior := false
	if in.FechaNacimiento != "" {
		fn, err := time.Parse("2006-01-02", in.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_nacimiento debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		fechaNacimiento = &fn
		e := ageAt(fn, time.Now())
		edad = &e
		descuentoSenior = e >= seniorAge
	}

	rol := entity.RoleCliente
	if entity.ValidRole(in.Rol) {
		rol = in.Rol
	}

	now := time.Now()
	user := &entity.User{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		Apellidos:        in.Apellidos,
		Email:            in.Email,
		PasswordHash:     string(hash),
		Telefono:         in.Telefono,
		FechaNacimiento:  fechaNacimiento,
		Region:           in.Region,
		Edad:             edad,
		DescuentoSenior:  descuentoSenior,
		EsEstudianteDuoc: strings.HasSuffix(strings.ToLower(in.Email), duocDomain),
		Rol:              rol,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tok, err := token.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *ToUserResponse(user), Token: tok}, nil
}

// Login verifica email/password y genera el token. Usuario inexistente y
// contraseña incorrecta producen el mismo error (no se revela cuál falló).
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *ToUserResponse(user), Token: tok}, nil
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

// ToUserResponse proyecta un User al DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:               u.ID,
		Nombre:           u.Nombre,
		Apellidos:        u.Apellidos,
		Email:            u.Email,
		Telefono:         u.Telefono,
		FechaNacimiento:  u.FechaNacimiento,
		Region:           u.Region,
		Edad:             u.Edad,
		DescuentoSenior:  u.DescuentoSenior,
		EsEstudianteDuoc: u.EsEstudianteDuoc,
		Rol:              u.Rol,
		CreatedAt:        u.CreatedAt,
	}
}
