package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// El unique sobre sku_id es la garantía autoritativa contra colisiones del
// generador de SKU ids.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullable convierte string vacío a NULL para columnas opcionales (parent_id,
// category_id y similares con FK).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromNullable convierte el puntero escaneado de vuelta a string.
func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
