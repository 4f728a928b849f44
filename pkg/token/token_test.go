package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milsabores/pasteleria-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "cliente@example.com"
	testIssuer = "pasteleria-test"
	testExpMin = 60
)

// Ley de ida y vuelta: Generate seguido de Parse devuelve los mismos campos de identidad.
func TestToken_GenerateYParse_RoundTrip(t *testing.T) {
	tok, err := token.Generate(testSecret, testUserID, testEmail, "cliente", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := token.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, id.ID)
	assert.Equal(t, testEmail, id.Email)
	assert.Equal(t, "cliente", id.Role)
}

func TestToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken, "secret incorrecto debe invalidar el token")
}

func TestToken_Expirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := token.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken, "token expirado debe retornar error")
}

func TestToken_Malformado_RetornaError(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestToken_SinSecret_RetornaErrNoSecret(t *testing.T) {
	_, err := token.Generate("", testUserID, testEmail, "admin", testIssuer, testExpMin)
	assert.ErrorIs(t, err, token.ErrNoSecret)

	_, err = token.Parse("", "cualquier-cosa")
	assert.ErrorIs(t, err, token.ErrNoSecret)
}

// Los tokens antiguos firmaban el rol bajo el alias `rol`; Parse debe normalizarlo.
func TestToken_AliasLegadoRol_SeNormaliza(t *testing.T) {
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    testUserID,
		"email": testEmail,
		"rol":   "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := legacy.SignedString([]byte(testSecret))
	require.NoError(t, err)

	id, err := token.Parse(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Role, "el alias legado `rol` debe leerse cuando `role` no viene")
}

// Si vienen ambos campos, gana el campo explícito `role`.
func TestToken_RolePrevaleceSobreAlias(t *testing.T) {
	both := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    testUserID,
		"email": testEmail,
		"role":  "cliente",
		"rol":   "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := both.SignedString([]byte(testSecret))
	require.NoError(t, err)

	id, err := token.Parse(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, "cliente", id.Role)
}

// Un token firmado con un algoritmo distinto a HMAC debe rechazarse.
func TestToken_MetodoDeFirmaInesperado_RetornaError(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  testUserID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
