// Package orders contiene la lógica de dominio del ciclo de vida de una orden:
// estados y transiciones, generación del número de orden y validación del
// payload de creación.
package orders

// Estados de una orden. El flujo normal avanza en este orden; Cancelado es
// alcanzable desde cualquier estado no terminal.
const (
	StatusPendiente  = "pendiente"
	StatusConfirmado = "confirmado"
	StatusPreparando = "preparando"
	StatusListo      = "listo"
	StatusEnviado    = "enviado"
	StatusEntregado  = "entregado"
	StatusCancelado  = "cancelado"
)

// transitions define las transiciones legales. Entregado y Cancelado son
// terminales: no tienen salidas.
var transitions = map[string][]string{
	StatusPendiente:  {StatusConfirmado, StatusCancelado},
	StatusConfirmado: {StatusPreparando, StatusCancelado},
	StatusPreparando: {StatusListo, StatusCancelado},
	StatusListo:      {StatusEnviado, StatusCancelado},
	StatusEnviado:    {StatusEntregado, StatusCancelado},
	StatusEntregado:  {},
	StatusCancelado:  {},
}

// ValidStatus indica si s es uno de los siete estados reconocidos.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// Terminal indica si desde s no existe ninguna transición.
func Terminal(s string) bool {
	return len(transitions[s]) == 0 && ValidStatus(s)
}

// CanTransition indica si el cambio from -> to está permitido por la máquina
// de estados. Ambos estados deben ser válidos.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
