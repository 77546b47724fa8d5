package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrForbidden        = errors.New("acceso denegado")
	ErrMaxDepthExceeded = errors.New("profundidad máxima de categorías excedida")
	ErrDanglingParent   = errors.New("categoría referencia un padre inexistente")
	ErrPublishFailed    = errors.New("fallo al publicar eventos de integración")
)
