package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// ValidRole indica si s es un rol reconocido.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleCliente
}

// User representa una cuenta de la tienda (cliente o administrador).
// Edad, DescuentoSenior y EsEstudianteDuoc son campos derivados que se
// calculan al registrar: edad desde la fecha de nacimiento, descuento senior
// para mayores de 50, y la marca de estudiante por el dominio del email.
type User struct {
	ID               string
	Nombre           string
	Apellidos        string
	Email            string // único
	PasswordHash     string // bcrypt; nunca se serializa hacia clientes
	Telefono         string
	FechaNacimiento  *time.Time
	Region           string
	Edad             *int
	DescuentoSenior  bool
	EsEstudianteDuoc bool
	Rol              string // admin | cliente
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
