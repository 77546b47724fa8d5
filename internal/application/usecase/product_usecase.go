package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/event"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD del agregado Product. La creación arma el
// agregado completo (grupos, opciones, SKUs), lo persiste en una transacción y
// publica los eventos de integración después del commit.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         TxRunner
	validator  *catalog.ProductValidator
	publisher  event.Publisher
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	tx TxRunner,
	validator *catalog.ProductValidator,
	publisher event.Publisher,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		tx:         tx,
		validator:  validator,
		publisher:  publisher,
		log:        log,
	}
}

// Create crea el producto con sus SKUs y publica product-created seguido de un
// sku-created por variante.
//
// La publicación ocurre después del commit y es un dominio de fallo distinto de
// la persistencia: si falla, la escritura NO se revierte; se loguea y se
// retorna ErrPublishFailed (entrega at-least-once, sin outbox por ahora).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductDetailResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price debe ser >= 0", domain.ErrInvalidInput)
	}
	status := entity.ProductStatus(in.Status)
	if in.Status == "" {
		status = entity.ProductStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, in.Status)
	}

	groupSpecs := toOptionGroupSpecs(in.OptionGroups)
	if err := uc.validator.Validate(groupSpecs); err != nil {
		return nil, err
	}

	// La categoría, si viene, debe resolver: su código se denormaliza en el
	// producto y un id colgante dejaría la fila inconsistente.
	categoryCode := ""
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category_id %s", domain.ErrCategoryNotFound, in.CategoryID)
		}
		categoryCode = category.Code
	}

	product := catalog.BuildProduct(catalog.ProductSpec{
		Name:              name,
		Description:       in.Description,
		Price:             in.Price,
		Status:            status,
		CategoryID:        in.CategoryID,
		CategoryCode:      categoryCode,
		ThumbnailImageURL: in.ThumbnailImageURL,
		Brand:             in.Brand,
		OptionGroups:      groupSpecs,
	})

	// Agregado completo o nada: una sola transacción.
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, _ repository.CategoryRepository) error {
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Int("sku_count", len(product.Skus)).
		Msg("producto creado")

	if err := uc.publishCreated(ctx, product); err != nil {
		uc.log.Error().Err(err).
			Str("product_id", product.ID).
			Msg("el producto quedó persistido pero la publicación de eventos falló")
		return nil, fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}

	return toProductDetailResponse(product), nil
}

// publishCreated publica primero el evento del producto y luego los de cada
// SKU. El corte en el primer fallo hace posible la publicación parcial.
func (uc *ProductUseCase) publishCreated(ctx context.Context, product *entity.Product) error {
	if err := uc.publisher.Publish(ctx, event.ToProductCreatedEvent(product)); err != nil {
		return fmt.Errorf("publicar product-created: %w", err)
	}
	if err := uc.publisher.PublishAll(ctx, event.ToSkuCreatedEvents(product)); err != nil {
		return fmt.Errorf("publicar sku-created: %w", err)
	}
	return nil
}

// GetByID devuelve el detalle con grupos y opciones. Un producto con borrado
// lógico sigue siendo consultable por id; solo el listado filtra por status.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.products.GetByIDWithOptions(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return toProductDetailResponse(product), nil
}

// List lista productos ACTIVE con filtros opcionales por categoría y keyword.
func (uc *ProductUseCase) List(categoryID, keyword string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, total, err := uc.products.Search(repository.ProductSearch{
		CategoryID: categoryID,
		Keyword:    keyword,
		Status:     entity.ProductStatusActive,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductListItem{
			ID:                p.ID,
			Name:              p.Name,
			Price:             p.Price,
			Status:            string(p.Status),
			CategoryID:        p.CategoryID,
			ThumbnailImageURL: p.ThumbnailImageURL,
		})
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualización parcial: solo los campos no nulos sobreescriben. No
// revalida ni modifica grupos de opciones.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductDetailResponse, error) {
	product, err := uc.products.GetByIDWithOptions(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price debe ser >= 0", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Status != nil {
		status := entity.ProductStatus(*in.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, *in.Status)
		}
		product.Status = status
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.ThumbnailImageURL != nil {
		product.ThumbnailImageURL = *in.ThumbnailImageURL
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductDetailResponse(product), nil
}

// Delete borrado lógico: status pasa a DELETED, la fila nunca se elimina.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	product.Delete()
	return uc.products.Update(product)
}

func toOptionGroupSpecs(groups []dto.CreateOptionGroupRequest) []catalog.OptionGroupSpec {
	specs := make([]catalog.OptionGroupSpec, 0, len(groups))
	for _, g := range groups {
		spec := catalog.OptionGroupSpec{Name: g.Name, Ordering: g.Ordering}
		for _, o := range g.Options {
			spec.Options = append(spec.Options, catalog.OptionSpec{
				Name:            o.Name,
				AdditionalPrice: o.AdditionalPrice,
				Ordering:        o.Ordering,
			})
		}
		specs = append(specs, spec)
	}
	return specs
}

func toProductDetailResponse(p *entity.Product) *dto.ProductDetailResponse {
	groups := make([]dto.OptionGroupResponse, 0, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		group := dto.OptionGroupResponse{ID: g.ID, Name: g.Name, Ordering: g.Ordering}
		for _, o := range g.Options {
			group.Options = append(group.Options, dto.OptionResponse{
				ID:              o.ID,
				Name:            o.Name,
				AdditionalPrice: o.AdditionalPrice,
				Ordering:        o.Ordering,
			})
		}
		groups = append(groups, group)
	}
	skus := make([]dto.SkuResponse, 0, len(p.Skus))
	for _, s := range p.Skus {
		skus = append(skus, dto.SkuResponse{
			ID:           s.ID,
			SkuID:        s.SkuID,
			Price:        s.Price,
			OptionValues: []byte(s.OptionValues),
		})
	}
	return &dto.ProductDetailResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Status:            string(p.Status),
		CategoryID:        p.CategoryID,
		CategoryCode:      p.CategoryCode,
		ThumbnailImageURL: p.ThumbnailImageURL,
		Brand:             p.Brand,
		OptionGroups:      groups,
		Skus:              skus,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
