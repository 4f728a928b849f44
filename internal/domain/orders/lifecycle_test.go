package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/orders"
)

func TestCanTransition_FlujoNormal(t *testing.T) {
	flujo := []string{
		orders.StatusPendiente,
		orders.StatusConfirmado,
		orders.StatusPreparando,
		orders.StatusListo,
		orders.StatusEnviado,
		orders.StatusEntregado,
	}
	for i := 0; i < len(flujo)-1; i++ {
		assert.True(t, orders.CanTransition(flujo[i], flujo[i+1]),
			"debe permitirse %s -> %s", flujo[i], flujo[i+1])
	}
}

func TestCanTransition_NoSePermiteSaltarEstados(t *testing.T) {
	assert.False(t, orders.CanTransition(orders.StatusPendiente, orders.StatusEnviado))
	assert.False(t, orders.CanTransition(orders.StatusConfirmado, orders.StatusEntregado))
	assert.False(t, orders.CanTransition(orders.StatusPendiente, orders.StatusListo))
}

func TestCanTransition_NoHayRetroceso(t *testing.T) {
	assert.False(t, orders.CanTransition(orders.StatusConfirmado, orders.StatusPendiente))
	assert.False(t, orders.CanTransition(orders.StatusEnviado, orders.StatusPreparando))
}

func TestCanTransition_CanceladoDesdeCualquierNoTerminal(t *testing.T) {
	noTerminales := []string{
		orders.StatusPendiente, orders.StatusConfirmado, orders.StatusPreparando,
		orders.StatusListo, orders.StatusEnviado,
	}
	for _, s := range noTerminales {
		assert.True(t, orders.CanTransition(s, orders.StatusCancelado),
			"cancelar debe permitirse desde %s", s)
	}
}

func TestCanTransition_EstadosTerminalesSinSalida(t *testing.T) {
	for _, terminal := range []string{orders.StatusEntregado, orders.StatusCancelado} {
		require.True(t, orders.Terminal(terminal))
		for _, destino := range []string{
			orders.StatusPendiente, orders.StatusConfirmado, orders.StatusPreparando,
			orders.StatusListo, orders.StatusEnviado, orders.StatusEntregado, orders.StatusCancelado,
		} {
			assert.False(t, orders.CanTransition(terminal, destino),
				"desde %s no debe salir ninguna transición (a %s)", terminal, destino)
		}
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, orders.ValidStatus("pendiente"))
	assert.True(t, orders.ValidStatus("cancelado"))
	assert.False(t, orders.ValidStatus("despachado"))
	assert.False(t, orders.ValidStatus(""))
}

func TestGenerateNumber_Formato(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := orders.GenerateNumber()
		assert.True(t, orders.ValidNumber(n), "numero generado %q debe cumplir el formato", n)
	}
}

func itemValido() entity.OrderItem {
	return entity.OrderItem{
		ProductoID: "p1",
		Nombre:     "Torta de chocolate",
		Precio:     decimal.NewFromInt(15990),
		Cantidad:   1,
	}
}

func envioValido() entity.ShippingData {
	return entity.ShippingData{
		Nombre:    "Ana",
		Apellidos: "Pérez Soto",
		Email:     "ana@example.com",
		Direccion: "Av. Siempre Viva 742",
		Comuna:    "Ñuñoa",
		Region:    "Metropolitana",
	}
}

func TestValidateNew_OK(t *testing.T) {
	err := orders.ValidateNew([]entity.OrderItem{itemValido()}, envioValido(), "webpay")
	assert.NoError(t, err)
}

func TestValidateNew_SinProductos(t *testing.T) {
	err := orders.ValidateNew(nil, envioValido(), "webpay")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateNew_SinMetodoPago(t *testing.T) {
	err := orders.ValidateNew([]entity.OrderItem{itemValido()}, envioValido(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateNew_EnvioIncompleto(t *testing.T) {
	casos := []func(*entity.ShippingData){
		func(e *entity.ShippingData) { e.Nombre = "" },
		func(e *entity.ShippingData) { e.Apellidos = "" },
		func(e *entity.ShippingData) { e.Email = "" },
		func(e *entity.ShippingData) { e.Direccion = "" },
		func(e *entity.ShippingData) { e.Comuna = "" },
		func(e *entity.ShippingData) { e.Region = "" },
	}
	for i, mod := range casos {
		envio := envioValido()
		mod(&envio)
		err := orders.ValidateNew([]entity.OrderItem{itemValido()}, envio, "webpay")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d: falta un campo de envío", i)
	}
}

func TestValidateNew_CantidadInvalida(t *testing.T) {
	it := itemValido()
	it.Cantidad = 0
	err := orders.ValidateNew([]entity.OrderItem{it}, envioValido(), "webpay")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
