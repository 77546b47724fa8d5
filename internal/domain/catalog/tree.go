package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryTreeNode nodo derivado del árbol de categorías. Se construye por
// request a partir del listado plano; nunca se persiste.
type CategoryTreeNode struct {
	ID       string
	Name     string
	Depth    int
	Children []*CategoryTreeNode
}

// BuildCategoryTree transforma el conjunto completo de categorías (ordenado por
// depth asc, ordering asc) en un bosque. El orden relativo de entrada se
// preserva entre hermanos y entre raíces.
//
// Una categoría cuyo ParentID no está en el conjunto es un problema de
// integridad de datos: el builder siempre recibe el catálogo completo, así que
// se retorna error en vez de omitir el nodo en silencio.
func BuildCategoryTree(categories []*entity.Category) ([]*CategoryTreeNode, error) {
	nodes := make(map[string]*CategoryTreeNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &CategoryTreeNode{
			ID:    c.ID,
			Name:  c.Name,
			Depth: c.Depth,
		}
	}

	var roots []*CategoryTreeNode
	for _, c := range categories {
		if c.IsRoot() {
			roots = append(roots, nodes[c.ID])
			continue
		}
		parent, ok := nodes[c.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: categoría %s referencia parent_id %s", domain.ErrDanglingParent, c.ID, c.ParentID)
		}
		parent.Children = append(parent.Children, nodes[c.ID])
	}

	return roots, nil
}
