package orders

import (
	"fmt"

	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// ValidateNew valida el contenido de una orden nueva: al menos una línea,
// datos de envío completos y método de pago presente.
func ValidateNew(items []entity.OrderItem, envio entity.ShippingData, metodoPago string) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: la orden debe tener al menos un producto", domain.ErrInvalidInput)
	}
	if metodoPago == "" {
		return fmt.Errorf("%w: datos de envío y método de pago son obligatorios", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if it.ProductoID == "" || it.Cantidad <= 0 {
			return fmt.Errorf("%w: cada línea requiere producto y cantidad positiva", domain.ErrInvalidInput)
		}
	}
	if envio.Nombre == "" || envio.Apellidos == "" || envio.Email == "" ||
		envio.Direccion == "" || envio.Comuna == "" || envio.Region == "" {
		return fmt.Errorf("%w: todos los datos de envío son obligatorios", domain.ErrInvalidInput)
	}
	return nil
}
