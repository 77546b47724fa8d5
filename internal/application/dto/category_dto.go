package dto

// CreateCategoryRequest entrada para crear una categoría. Depth no se envía:
// se calcula a partir del padre.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID string `json:"parent_id"`
	Ordering int    `json:"ordering" validate:"min=0"`
}

// CategoryResponse salida plana de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	ParentID string `json:"parent_id,omitempty"`
	Depth    int    `json:"depth"`
	Ordering int    `json:"ordering"`
}

// CategoryListResponse listado plano de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// CategoryTreeResponse nodo del árbol jerárquico de categorías.
type CategoryTreeResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Depth    int                    `json:"depth"`
	Children []CategoryTreeResponse `json:"children"`
}
