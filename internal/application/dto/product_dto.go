package dto

import (
	"encoding/json"
	"time"
)

// CreateProductRequest entrada para crear un producto con sus grupos de opciones.
type CreateProductRequest struct {
	Name              string                     `json:"name" validate:"required,min=1,max=200"`
	Description       string                     `json:"description"`
	Price             int64                      `json:"price" validate:"min=0"`
	Status            string                     `json:"status"` // default ACTIVE
	CategoryID        string                     `json:"category_id"`
	ThumbnailImageURL string                     `json:"thumbnail_image_url"`
	Brand             string                     `json:"brand"`
	OptionGroups      []CreateOptionGroupRequest `json:"option_groups"`
}

// CreateOptionGroupRequest grupo de opciones dentro del create.
type CreateOptionGroupRequest struct {
	Name     string                `json:"name" validate:"required,min=1,max=100"`
	Ordering int                   `json:"ordering" validate:"min=0"`
	Options  []CreateOptionRequest `json:"options"`
}

// CreateOptionRequest opción dentro de un grupo.
type CreateOptionRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	AdditionalPrice int64  `json:"additional_price" validate:"min=0"`
	Ordering        int    `json:"ordering" validate:"min=0"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes
// (no nulos) sobreescriben el agregado.
type UpdateProductRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"`
	Price             *int64  `json:"price" validate:"omitempty,min=0"`
	Status            *string `json:"status"`
	CategoryID        *string `json:"category_id"`
	ThumbnailImageURL *string `json:"thumbnail_image_url"`
	Brand             *string `json:"brand"`
}

// ProductListItem fila del listado paginado.
type ProductListItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	Status            string `json:"status"`
	CategoryID        string `json:"category_id,omitempty"`
	ThumbnailImageURL string `json:"thumbnail_image_url,omitempty"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductListItem `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductDetailResponse producto completo con grupos, opciones y SKUs.
type ProductDetailResponse struct {
	ID                string                `json:"id"`
	Code              string                `json:"code"`
	Name              string                `json:"name"`
	Description       string                `json:"description,omitempty"`
	Price             int64                 `json:"price"`
	Status            string                `json:"status"`
	CategoryID        string                `json:"category_id,omitempty"`
	CategoryCode      string                `json:"category_code,omitempty"`
	ThumbnailImageURL string                `json:"thumbnail_image_url,omitempty"`
	Brand             string                `json:"brand,omitempty"`
	OptionGroups      []OptionGroupResponse `json:"option_groups"`
	Skus              []SkuResponse         `json:"skus,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// OptionGroupResponse grupo de opciones en el detalle.
type OptionGroupResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Ordering int              `json:"ordering"`
	Options  []OptionResponse `json:"options"`
}

// OptionResponse opción en el detalle.
type OptionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AdditionalPrice int64  `json:"additional_price"`
	Ordering        int    `json:"ordering"`
}

// SkuResponse variante generada al crear el producto.
type SkuResponse struct {
	ID           string          `json:"id"`
	SkuID        string          `json:"sku_id"`
	Price        int64           `json:"price"`
	OptionValues json.RawMessage `json:"option_values"`
}
