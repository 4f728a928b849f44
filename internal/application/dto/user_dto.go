package dto

import "time"

// RegisterRequest entrada para registro. FechaNacimiento en formato YYYY-MM-DD.
type RegisterRequest struct {
	Nombre          string `json:"nombre" validate:"required,max=100"`
	Apellidos       string `json:"apellidos" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Telefono        string `json:"telefono" validate:"omitempty,max=20"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Region          string `json:"region" validate:"omitempty,max=100"`
	Rol             string `json:"rol" validate:"omitempty,oneof=admin cliente"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de la contraseña.
type UserResponse struct {
	ID               string     `json:"id"`
	Nombre           string     `json:"nombre"`
	Apellidos        string     `json:"apellidos"`
	Email            string     `json:"email"`
	Telefono         string     `json:"telefono,omitempty"`
	FechaNacimiento  *time.Time `json:"fecha_nacimiento,omitempty"`
	Region           string     `json:"region,omitempty"`
	Edad             *int       `json:"edad,omitempty"`
	DescuentoSenior  bool       `json:"descuento_senior"`
	EsEstudianteDuoc bool       `json:"es_estudiante_duoc"`
	Rol              string     `json:"rol"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AuthResponse salida de registro/login: usuario más token firmado.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateUserRequest campos editables del perfil (actualización parcial).
type UpdateUserRequest struct {
	Nombre          *string `json:"nombre"`
	Apellidos       *string `json:"apellidos"`
	Telefono        *string `json:"telefono"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Region          *string `json:"region"`
}

// ChangePasswordRequest cambio de contraseña: requiere la contraseña actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
