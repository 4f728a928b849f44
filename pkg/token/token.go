// Package token firma y valida los tokens de identidad de la API (JWT HS256).
//
// Un token es stateless: una vez emitido es válido hasta su expiración sin
// importar cambios del lado del servidor (no hay revocación; ver DESIGN.md).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores del codec.
var (
	// ErrNoSecret indica que no hay secreto de firma configurado (error de configuración, no del cliente).
	ErrNoSecret = errors.New("token: JWT_SECRET no configurado")
	// ErrInvalidToken indica firma incorrecta, estructura malformada o expiración vencida.
	ErrInvalidToken = errors.New("token: inválido o expirado")
)

// Identity es el Identity Claim ya normalizado: el campo rol legado (`rol`)
// queda resuelto aquí y no existe aguas abajo.
type Identity struct {
	ID    string
	Email string
	Role  string // "admin" | "cliente"; vacío si el token no trae rol
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Históricamente el rol se firmó bajo dos nombres (`role` y el alias `rol`);
// se aceptan ambos al decodificar, con prioridad para `role`.
type Claims struct {
	jwt.RegisteredClaims
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	RolLegacy string `json:"rol,omitempty"`
}

// normalizedRole devuelve el rol efectivo: `role` explícito sobre el alias legado.
func (c *Claims) normalizedRole() string {
	if c.Role != "" {
		return c.Role
	}
	return c.RolLegacy
}

// Generate genera un token JWT firmado con id, email y rol del usuario.
// Falla con ErrNoSecret si no hay secreto configurado.
func Generate(secret, id, email, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		ID:    id,
		Email: email,
		Role:  role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad normalizada.
// Retorna ErrInvalidToken (envolviendo la causa) si el token es inválido,
// expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, ErrNoSecret
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		ID:    claims.ID,
		Email: claims.Email,
		Role:  claims.normalizedRole(),
	}, nil
}
