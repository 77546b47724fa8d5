package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, description, price, status, category_id, category_code, thumbnail_image_url, brand, created_at, updated_at`

// Create persiste el agregado completo: producto, grupos, opciones y SKUs.
// Debe invocarse dentro del TxRunner; los inserts por separado no son atómicos.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()

	query := `
		INSERT INTO products (id, code, name, description, price, status, category_id, category_code, thumbnail_image_url, brand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.Description, product.Price,
		string(product.Status), nullable(product.CategoryID), nullable(product.CategoryCode),
		product.ThumbnailImageURL, product.Brand, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código de producto %s", domain.ErrConflict, product.Code)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	for _, group := range product.OptionGroups {
		_, err := r.q.Exec(ctx, `
			INSERT INTO product_option_groups (id, product_id, name, ordering, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			group.ID, product.ID, group.Name, group.Ordering, group.CreatedAt, group.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert option group: %w", err)
		}
		for _, opt := range group.Options {
			_, err := r.q.Exec(ctx, `
				INSERT INTO product_options (id, option_group_id, name, additional_price, ordering, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				opt.ID, group.ID, opt.Name, opt.AdditionalPrice, opt.Ordering, opt.CreatedAt, opt.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert option: %w", err)
			}
		}
	}

	for _, sku := range product.Skus {
		_, err := r.q.Exec(ctx, `
			INSERT INTO product_skus (id, sku_id, product_id, price, option_values, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sku.ID, sku.SkuID, product.ID, sku.Price, sku.OptionValues, sku.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: sku_id %s ya existe", domain.ErrConflict, sku.SkuID)
			}
			return fmt.Errorf("insert sku: %w", err)
		}
	}

	return nil
}

// GetByID obtiene solo los campos escalares del producto. Retorna nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDWithOptions obtiene el producto con grupos, opciones y SKUs cargados.
func (r *ProductRepo) GetByIDWithOptions(id string) (*entity.Product, error) {
	product, err := r.GetByID(id)
	if err != nil || product == nil {
		return product, err
	}
	if err := r.loadOptionGroups(product); err != nil {
		return nil, err
	}
	if err := r.loadSkus(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Search lista productos según condiciones (status obligatorio, categoría y
// keyword opcionales) y devuelve además el total sin paginar.
func (r *ProductRepo) Search(search repository.ProductSearch) ([]*entity.Product, int, error) {
	ctx := context.Background()

	where := ` WHERE status = $1`
	args := []any{string(search.Status)}
	if search.CategoryID != "" {
		args = append(args, search.CategoryID)
		where += ` AND category_id = $` + strconv.Itoa(len(args))
	}
	if search.Keyword != "" {
		args = append(args, "%"+search.Keyword+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR description ILIKE $` + n + `)`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args = append(args, search.Limit, search.Offset)
	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update sobreescribe los campos escalares del producto. Grupos y SKUs son
// inmutables después de la creación; no se tocan aquí.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, status = $5, category_id = $6,
		    thumbnail_image_url = $7, brand = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, string(product.Status),
		nullable(product.CategoryID), product.ThumbnailImageURL, product.Brand, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// loadOptionGroups carga los grupos y sus opciones en orden de ordering,
// cableando las referencias inversas del agregado.
func (r *ProductRepo) loadOptionGroups(product *entity.Product) error {
	ctx := context.Background()

	rows, err := r.q.Query(ctx, `
		SELECT id, name, ordering, created_at, updated_at
		FROM product_option_groups WHERE product_id = $1 ORDER BY ordering ASC`, product.ID)
	if err != nil {
		return fmt.Errorf("list option groups: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.ProductOptionGroup)
	for rows.Next() {
		var g entity.ProductOptionGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Ordering, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return fmt.Errorf("scan option group: %w", err)
		}
		product.AddOptionGroup(&g)
		byID[g.ID] = &g
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(byID) == 0 {
		return nil
	}

	optRows, err := r.q.Query(ctx, `
		SELECT o.id, o.option_group_id, o.name, o.additional_price, o.ordering, o.created_at, o.updated_at
		FROM product_options o
		JOIN product_option_groups g ON g.id = o.option_group_id
		WHERE g.product_id = $1
		ORDER BY g.ordering ASC, o.ordering ASC`, product.ID)
	if err != nil {
		return fmt.Errorf("list options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		var o entity.ProductOption
		var groupID string
		if err := optRows.Scan(&o.ID, &groupID, &o.Name, &o.AdditionalPrice, &o.Ordering, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return fmt.Errorf("scan option: %w", err)
		}
		if group, ok := byID[groupID]; ok {
			group.AddOption(&o)
		}
	}
	return optRows.Err()
}

// loadSkus carga las variantes del producto.
func (r *ProductRepo) loadSkus(product *entity.Product) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sku_id, price, option_values, created_at
		FROM product_skus WHERE product_id = $1 ORDER BY sku_id ASC`, product.ID)
	if err != nil {
		return fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s entity.ProductSku
		if err := rows.Scan(&s.ID, &s.SkuID, &s.Price, &s.OptionValues, &s.CreatedAt); err != nil {
			return fmt.Errorf("scan sku: %w", err)
		}
		product.AddSku(&s)
	}
	return rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var status string
	var categoryID, categoryCode *string
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &status,
		&categoryID, &categoryCode, &p.ThumbnailImageURL, &p.Brand, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = entity.ProductStatus(status)
	p.CategoryID = fromNullable(categoryID)
	p.CategoryCode = fromNullable(categoryCode)
	return &p, nil
}
