package domain

import "errors"

// Errores de dominio (sin dependencias externas). Taxonomía cerrada: los callers
// deciden por sentinel, nunca comparando texto de mensajes.
var (
	// ErrNotFound el equipo, préstamo u otro recurso referenciado no existe.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidInput cantidad no positiva o campos obligatorios ausentes.
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrInsufficientStock el material servible disponible es menor a la cantidad solicitada.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrLoanAlreadyReturned el préstamo ya fue devuelto; la devolución ocurre una sola vez.
	ErrLoanAlreadyReturned = errors.New("el material ya fue devuelto")
	// ErrTxAborted la transacción fue abortada por conflicto de escritura o falla de infraestructura.
	ErrTxAborted = errors.New("transacción abortada")

	// Errores de las capas circundantes (auth y CRUD).
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	// ErrEquipmentHasOpenLoans no se puede eliminar un equipo con préstamos abiertos.
	ErrEquipmentHasOpenLoans = errors.New("el equipo tiene préstamos abiertos")
)
