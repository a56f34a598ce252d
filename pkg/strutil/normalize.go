package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// "García" -> "Garcia", "Muñoz" -> "Munoz". La cadena tiene estado interno,
// por eso se construye por llamada y no se comparte entre goroutines.
func foldTransformer() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
}

// Fold normaliza un string para búsqueda insensible a mayúsculas y acentos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer(), s)
	if err != nil {
		// Entrada no normalizable: se compara tal cual, solo en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold reporta si s contiene substr ignorando mayúsculas y acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
