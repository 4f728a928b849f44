package dto

// ErrorResponse cuerpo de error HTTP.
// Details solo se llena fuera de producción (mensajes del datastore, stack).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
