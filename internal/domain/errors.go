package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a
// códigos de estado; la capa de persistencia los produce en lugar de exponer
// errores crudos del driver.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCodeAlreadyExists  = errors.New("el código del producto ya existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidStatus      = errors.New("estado inválido")
	ErrConflict           = errors.New("transición de estado no permitida")
)
