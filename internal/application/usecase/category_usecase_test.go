package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func newCategoryUC(maxDepth int) (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{}
	return usecase.NewCategoryUseCase(repo, maxDepth), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Sin padre, depth 0; con padre en depth d, depth d+1.
func TestCategoryCreate_CalculoDeDepth(t *testing.T) {
	uc, _ := newCategoryUC(0)

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Depth)
	assert.Empty(t, root.ParentID)
	assert.NotEmpty(t, root.ID)
	assert.NotEmpty(t, root.Code)

	child, err := uc.Create(dto.CreateCategoryRequest{Name: "Teléfonos", ParentID: root.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, child.Depth)
	assert.Equal(t, root.ID, child.ParentID)
}

// parent_id que no resuelve: NotFound y no se persiste nada.
func TestCategoryCreate_PadreInexistente(t *testing.T) {
	uc, repo := newCategoryUC(0)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Huérfana", ParentID: "no-existe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Nil(t, out)
	assert.Empty(t, repo.categories)
}

func TestCategoryCreate_NombreEnBlanco(t *testing.T) {
	uc, _ := newCategoryUC(0)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_OrderingNegativo(t *testing.T) {
	uc, _ := newCategoryUC(0)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Hogar", Ordering: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Con maxDepth 2 la jerarquía admite depth 0 y 1; crear en depth 2 falla.
func TestCategoryCreate_ProfundidadMaxima(t *testing.T) {
	uc, _ := newCategoryUC(2)

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Raíz"})
	require.NoError(t, err)
	child, err := uc.Create(dto.CreateCategoryRequest{Name: "Media", ParentID: root.ID})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Hoja", ParentID: child.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaxDepthExceeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// List y Tree
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryList_PorPadre(t *testing.T) {
	uc, _ := newCategoryUC(0)

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Audio", ParentID: root.ID, Ordering: 1})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Teléfonos", ParentID: root.ID, Ordering: 0})
	require.NoError(t, err)

	// Raíces
	roots, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, roots.Items, 1)
	assert.Equal(t, "Electrónica", roots.Items[0].Name)

	// Hijos ordenados por ordering
	children, err := uc.List(root.ID)
	require.NoError(t, err)
	require.Len(t, children.Items, 2)
	assert.Equal(t, "Teléfonos", children.Items[0].Name)
	assert.Equal(t, "Audio", children.Items[1].Name)
}

// Escenario de jerarquía de dos niveles: Electrónica -> Teléfonos.
func TestCategoryTree_Escenario(t *testing.T) {
	uc, _ := newCategoryUC(0)

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Depth)

	child, err := uc.Create(dto.CreateCategoryRequest{Name: "Teléfonos", ParentID: root.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, child.Depth)

	tree, err := uc.Tree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Electrónica", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Teléfonos", tree[0].Children[0].Name)
	assert.Empty(t, tree[0].Children[0].Children)
}

func TestCategoryTree_Vacio(t *testing.T) {
	uc, _ := newCategoryUC(0)

	tree, err := uc.Tree()
	require.NoError(t, err)
	assert.Empty(t, tree)
}
