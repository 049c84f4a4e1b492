package dto

// ErrorResponse cuerpo de error HTTP. Message va en árabe (idioma del cliente).
type ErrorResponse struct {
	Message string `json:"message"`
}

// SuccessResponse respuesta mínima de operaciones sin cuerpo.
type SuccessResponse struct {
	Success bool `json:"success"`
}
