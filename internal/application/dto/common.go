package dto

// Envelope de respuesta JSON de toda la API.
// Éxito: {status:"success", message, ...campos extra}.
// Fallo:  {status:"error"|"fail", message}.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFail    = "fail"
)

// StatusResponse cuerpo mínimo de éxito/fallo.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK construye un envelope de éxito.
func OK(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// Error construye un envelope de error.
func Error(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}

// Fail construye un envelope de soft-fail (operación válida sin efecto).
func Fail(message string) StatusResponse {
	return StatusResponse{Status: StatusFail, Message: message}
}
