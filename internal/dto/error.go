package dto

type ErrorResponse struct {
	Error  string            `json:"error"`
	Title  string            `json:"title,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}
