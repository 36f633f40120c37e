package authenticating

import "errors"

var (
	ErrAuthDisabled  = errors.New("autenticação desabilitada: AUTH_SECRET não configurado")
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrEmptyOperator = errors.New("operador obrigatório")
)
