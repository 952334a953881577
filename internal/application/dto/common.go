package dto

// ErrorResponse cuerpo de error HTTP.
// Category distingue lo que el cliente puede corregir (validation), lo que debe volver a consultar
// (stock, conflict), lo que no existe (not_found) y los fallos del servidor (internal).
type ErrorResponse struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ListResponse envoltorio genérico para listados sin paginación.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResponse construye la respuesta garantizando items no nulo en el JSON.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}
