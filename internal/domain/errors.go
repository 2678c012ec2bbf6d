package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrItemNotFound      = errors.New("item não encontrado")
	ErrDuplicateItem     = errors.New("item já cadastrado")
	ErrInvalidQuantity   = errors.New("quantidade inválida")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrOperatorNotFound  = errors.New("operador não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrForbidden         = errors.New("acesso negado")
)
