package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/application/usecase"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/orders"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
	"github.com/milsabores/pasteleria-api/pkg/token"
)

// fakeOrderRepo repositorio en memoria que respeta el contrato del puerto,
// incluido el filtrado en la "consulta" (no post-filtrado por el caso de uso).
type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.byID {
		if filter.Estado != "" && o.Estado != filter.Estado {
			continue
		}
		if filter.UsuarioID != "" && (o.UsuarioID == nil || *o.UsuarioID != filter.UsuarioID) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, estado string) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	o.Estado = estado
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Statistics(_ context.Context) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{PorEstado: map[string]int{}}
	total := decimal.Zero
	for _, o := range f.byID {
		stats.TotalOrdenes++
		total = total.Add(o.Total)
		stats.PorEstado[o.Estado]++
	}
	stats.TotalVentas = total
	if stats.TotalOrdenes > 0 {
		stats.PromedioVenta = total.Div(decimal.NewFromInt(int64(stats.TotalOrdenes)))
	}
	return stats, nil
}

var (
	actorAdmin   = token.Identity{ID: "admin-1", Email: "admin@x.com", Role: entity.RoleAdmin}
	actorCliente = token.Identity{ID: "user-1", Email: "a@x.com", Role: entity.RoleCliente}
	actorOtro    = token.Identity{ID: "user-2", Email: "b@x.com", Role: entity.RoleCliente}
)

func ordenValida() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Productos: []entity.OrderItem{{
			ProductoID: "p1",
			Nombre:     "Torta tres leches",
			Precio:     decimal.NewFromInt(18990),
			Cantidad:   1,
		}},
		Subtotal:   decimal.NewFromInt(18990),
		IVA:        decimal.NewFromInt(3608),
		Total:      decimal.NewFromInt(22598),
		DatosEnvio: entity.ShippingData{Nombre: "Ana", Apellidos: "Pérez", Email: "a@x.com", Direccion: "Calle 1", Comuna: "Ñuñoa", Region: "RM"},
		MetodoPago: "webpay",
	}
}

func TestOrderCreate_NacePendienteConNumero(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo(), nil)

	uid := actorCliente.ID
	out, err := uc.Create(context.Background(), &uid, ordenValida())
	require.NoError(t, err)

	assert.Equal(t, orders.StatusPendiente, out.Orden.Estado)
	assert.True(t, orders.ValidNumber(out.NumeroOrden), "numero %q debe tener formato ORD-<ts>-<0..999>", out.NumeroOrden)
	assert.Equal(t, out.ID, out.Orden.ID)
}

func TestOrderCreate_SinProductos_Rechazada(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo(), nil)

	in := ordenValida()
	in.Productos = nil
	_, err := uc.Create(context.Background(), nil, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_AnonimaPermitida(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo(), nil)

	out, err := uc.Create(context.Background(), nil, ordenValida())
	require.NoError(t, err)
	assert.Nil(t, out.Orden.UsuarioID)
}

func seedOrders(t *testing.T, repo *fakeOrderRepo, uc *usecase.OrderUseCase) (mia, ajena string) {
	t.Helper()
	uid1 := actorCliente.ID
	o1, err := uc.Create(context.Background(), &uid1, ordenValida())
	require.NoError(t, err)
	uid2 := actorOtro.ID
	o2, err := uc.Create(context.Background(), &uid2, ordenValida())
	require.NoError(t, err)
	return o1.ID, o2.ID
}

func TestOrderListFor_NoAdminSoloVeLoSuyo(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	seedOrders(t, repo, uc)

	// Aunque el no-admin intente filtrar por otro usuario, el caso de uso
	// inyecta su identidad y el filtro ajeno queda sobrescrito.
	list, err := uc.ListFor(context.Background(), actorCliente, repository.OrderFilter{UsuarioID: actorOtro.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].UsuarioID)
	assert.Equal(t, actorCliente.ID, *list[0].UsuarioID)
}

func TestOrderListFor_AdminVeTodo(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	seedOrders(t, repo, uc)

	list, err := uc.ListFor(context.Background(), actorAdmin, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOrderGetFor_DuenoYAdminOK_OtroForbidden(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	mia, _ := seedOrders(t, repo, uc)

	_, err := uc.GetFor(context.Background(), actorCliente, mia)
	assert.NoError(t, err)

	_, err = uc.GetFor(context.Background(), actorAdmin, mia)
	assert.NoError(t, err)

	// Mismatch de propiedad responde Forbidden, no NotFound.
	_, err = uc.GetFor(context.Background(), actorOtro, mia)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderGetFor_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo(), nil)

	_, err := uc.GetFor(context.Background(), actorAdmin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderTransition_SoloAdmin(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	mia, _ := seedOrders(t, repo, uc)

	_, err := uc.Transition(context.Background(), actorCliente, mia, orders.StatusConfirmado)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Transition(context.Background(), actorAdmin, mia, orders.StatusConfirmado)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusConfirmado, out.Estado)
}

func TestOrderTransition_EstadoDesconocido(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	mia, _ := seedOrders(t, repo, uc)

	_, err := uc.Transition(context.Background(), actorAdmin, mia, "despachado")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderTransition_RespetaMaquinaDeEstados(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	mia, _ := seedOrders(t, repo, uc)

	// pendiente -> enviado se salta estados intermedios.
	_, err := uc.Transition(context.Background(), actorAdmin, mia, orders.StatusEnviado)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Flujo completo hasta entregado.
	for _, estado := range []string{
		orders.StatusConfirmado, orders.StatusPreparando, orders.StatusListo,
		orders.StatusEnviado, orders.StatusEntregado,
	} {
		_, err := uc.Transition(context.Background(), actorAdmin, mia, estado)
		require.NoError(t, err, "transición a %s", estado)
	}

	// Entregado es terminal.
	_, err = uc.Transition(context.Background(), actorAdmin, mia, orders.StatusCancelado)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderStatistics_SoloAdmin(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	seedOrders(t, repo, uc)

	_, err := uc.Statistics(context.Background(), actorCliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stats, err := uc.Statistics(context.Background(), actorAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrdenes)
	assert.Equal(t, 2, stats.PorEstado[orders.StatusPendiente])
	assert.True(t, stats.TotalVentas.Equal(decimal.NewFromInt(45196)))
	assert.True(t, stats.PromedioVenta.Equal(decimal.NewFromInt(22598)))
}

func TestOrderListForUser_SoloPropioOAdmin(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo, nil)
	seedOrders(t, repo, uc)

	_, err := uc.ListForUser(context.Background(), actorCliente, actorOtro.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.ListForUser(context.Background(), actorAdmin, actorOtro.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
