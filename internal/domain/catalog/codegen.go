package catalog

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateCategoryCode genera el código legible de una categoría a partir de su
// nombre. Ej.: "Electrónica" -> "ELEC-3F9A2B". El sufijo aleatorio evita
// choques entre nombres con el mismo prefijo; el código queda fijo al crear.
func GenerateCategoryCode(name string) string {
	return slugPrefix(name, 4) + "-" + codeSuffix()
}

// GenerateProductCode genera el código del producto, semilla del SKU id.
// Ej.: "Camiseta básica" -> "CAMISE-3F9A2B".
func GenerateProductCode(name string) string {
	return slugPrefix(name, 6) + "-" + codeSuffix()
}

// slugPrefix toma los primeros maxLen caracteres alfanuméricos ASCII del
// nombre, en mayúsculas. Nombres sin caracteres utilizables caen a "X".
func slugPrefix(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= maxLen {
			break
		}
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// codeSuffix fragmento corto de un uuid, en mayúsculas.
func codeSuffix() string {
	return strings.ToUpper(uuid.New().String()[:6])
}
