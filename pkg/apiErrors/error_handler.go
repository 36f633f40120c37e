package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_006" // Token inválido
	ErrExpiredToken = "AUTH_007" // Token expirado
	ErrAuthDisabled = "AUTH_011" // Segredo de autenticação não configurado

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrNotFound       = "VAL_004" // Rota inexistente

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrSyncInProgress = "SRV_005" // Download já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:   http.StatusUnauthorized,
	ErrExpiredToken:   http.StatusUnauthorized,
	ErrAuthDisabled:   http.StatusServiceUnavailable,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrNotFound:       http.StatusNotFound,
	ErrInternalServer: http.StatusInternalServerError,
	ErrSyncInProgress: http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusCode retorna o status HTTP do código; desconhecidos viram 500
func StatusCode(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	json.NewEncoder(w).Encode(apiErr)
}
