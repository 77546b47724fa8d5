package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out, nil
}

func (r *fakeCategoryRepo) ListByDepth(depth int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Depth == depth {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out, nil
}

func (r *fakeCategoryRepo) ListAllOrdered() ([]*entity.Category, error) {
	out := make([]*entity.Category, len(r.categories))
	copy(out, r.categories)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return out[i].Ordering < out[j].Ordering
	})
	return out, nil
}

func sortCategories(list []*entity.Category) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Ordering < list[j].Ordering })
}

type fakeProductRepo struct {
	products []*entity.Product
	skuIDs   map[string]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{skuIDs: map[string]bool{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	// Réplica del unique constraint sobre sku_id.
	for _, sku := range p.Skus {
		if r.skuIDs[sku.SkuID] {
			return fmt.Errorf("%w: sku_id %s ya existe", domain.ErrConflict, sku.SkuID)
		}
	}
	for _, sku := range p.Skus {
		r.skuIDs[sku.SkuID] = true
	}
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDWithOptions(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Search(search repository.ProductSearch) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, p := range r.products {
		if p.Status != search.Status {
			continue
		}
		if search.CategoryID != "" && p.CategoryID != search.CategoryID {
			continue
		}
		if search.Keyword != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(search.Keyword)) &&
			!strings.Contains(strings.ToLower(p.Description), strings.ToLower(search.Keyword)) {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if search.Offset >= total {
		return nil, total, nil
	}
	end := search.Offset + search.Limit
	if end > total {
		end = total
	}
	return matched[search.Offset:end], total, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes; la atomicidad
// real se prueba contra PostgreSQL, no aquí.
type fakeTxRunner struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) error) error {
	return fn(t.products, t.categories)
}
