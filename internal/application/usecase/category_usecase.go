package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías: listado, árbol y creación.
// Las categorías son inmutables después de crearse (sin update/delete).
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	maxDepth int
}

// NewCategoryUseCase construye el caso de uso. maxDepth limita los niveles de
// la jerarquía (<= 0 deshabilita el límite).
func NewCategoryUseCase(repo repository.CategoryRepository, maxDepth int) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, maxDepth: maxDepth}
}

// List lista categorías por padre. parentID vacío devuelve las raíces.
func (uc *CategoryUseCase) List(parentID string) (*dto.CategoryListResponse, error) {
	categories, err := uc.repo.ListByParent(parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Tree construye el bosque jerárquico completo a partir del listado plano
// ordenado por depth y ordering. Se arma por request; no se cachea.
func (uc *CategoryUseCase) Tree() ([]dto.CategoryTreeResponse, error) {
	categories, err := uc.repo.ListAllOrdered()
	if err != nil {
		return nil, err
	}
	roots, err := catalog.BuildCategoryTree(categories)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryTreeResponse, 0, len(roots))
	for _, node := range roots {
		out = append(out, toTreeResponse(node))
	}
	return out, nil
}

// Create crea una categoría. Con padre, depth = padre.Depth + 1 y el padre debe
// existir; sin padre, depth = 0. El código se genera a partir del nombre.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Ordering < 0 {
		return nil, fmt.Errorf("%w: ordering debe ser >= 0", domain.ErrInvalidInput)
	}

	depth := 0
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent_id %s", domain.ErrCategoryNotFound, in.ParentID)
		}
		depth = parent.Depth + 1
		if uc.maxDepth > 0 && depth >= uc.maxDepth {
			return nil, fmt.Errorf("%w: máximo %d niveles", domain.ErrMaxDepthExceeded, uc.maxDepth)
		}
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      catalog.GenerateCategoryCode(name),
		ParentID:  in.ParentID,
		Depth:     depth,
		Ordering:  in.Ordering,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Code:     c.Code,
		ParentID: c.ParentID,
		Depth:    c.Depth,
		Ordering: c.Ordering,
	}
}

func toTreeResponse(node *catalog.CategoryTreeNode) dto.CategoryTreeResponse {
	children := make([]dto.CategoryTreeResponse, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, toTreeResponse(child))
	}
	return dto.CategoryTreeResponse{
		ID:       node.ID,
		Name:     node.Name,
		Depth:    node.Depth,
		Children: children,
	}
}
