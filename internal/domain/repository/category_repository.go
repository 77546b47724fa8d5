package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// ListByParent lista hijos directos de parentID, ordenados por ordering.
	// parentID vacío lista las raíces.
	ListByParent(parentID string) ([]*entity.Category, error)
	ListByDepth(depth int) ([]*entity.Category, error)
	// ListAllOrdered devuelve el catálogo completo ordenado por depth asc,
	// ordering asc: el orden de entrada que espera el builder del árbol.
	ListAllOrdered() ([]*entity.Category, error)
}
