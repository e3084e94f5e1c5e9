// Package texto agrupa utilidades de texto para búsquedas en español.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar quita diacríticos y pasa a minúsculas, de modo que "Ácido"
// y "acido" comparen igual en las búsquedas de catálogo.
func Normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contiene indica si texto contiene la búsqueda, ambas normalizadas.
func Contiene(texto, busqueda string) bool {
	return strings.Contains(Normalizar(texto), Normalizar(busqueda))
}
