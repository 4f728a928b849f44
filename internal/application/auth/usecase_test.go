package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/milsabores/pasteleria-api/internal/application/auth"
	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/pkg/token"
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

const testSecret = "secret-para-tests-de-auth"

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pasteleria-test",
	})
}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		Nombre:    "Ana",
		Apellidos: "Pérez Soto",
		Email:     "a@x.com",
		Password:  "secret1",
		Region:    "Metropolitana",
	}
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	stored := repo.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registroValido())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registroValido()
	in.Apellidos = ""
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registroValido()
	in.Email = "sin-arroba"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DerivaEdadYDescuentoSenior(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	in := registroValido()
	nacimiento := time.Now().AddDate(-60, 0, -1)
	in.FechaNacimiento = nacimiento.Format("2006-01-02")

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.User.Edad)
	assert.Equal(t, 60, *out.User.Edad)
	assert.True(t, out.User.DescuentoSenior, "edad >= 50 debe activar el descuento senior")
}

func TestRegister_MenorDe50SinDescuento(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registroValido()
	in.FechaNacimiento = time.Now().AddDate(-30, 0, -1).Format("2006-01-02")

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, out.User.DescuentoSenior)
}

func TestRegister_DetectaEstudianteDuoc(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registroValido()
	in.Email = "alumno@duocuc.cl"
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.User.EsEstudianteDuoc)
}

func TestRegister_RolPorDefectoCliente(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registroValido()
	in.Rol = "superusuario" // rol no reconocido cae al default
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.User.Rol)
}

func TestLogin_RoundTrip(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.User.Email)

	// El token emitido debe decodificar a la misma identidad.
	id, err := token.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, id.ID)
	assert.Equal(t, "a@x.com", id.Email)
	assert.Equal(t, entity.RoleCliente, id.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_MismoError(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password incorrecta deben producir el mismo error")
}
