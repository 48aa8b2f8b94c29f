package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder descompone a NFD, elimina marcas diacríticas y recompone a NFC.
// "Chaleco Antibalas Nivel III-A" y "chaleco antibalas nivel iii-a" quedan iguales
// tras Fold, lo que permite búsquedas insensibles a tildes sobre description_norm.
var folder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold devuelve s en minúsculas, sin tildes ni otras marcas diacríticas.
// Si la transformación falla (entrada no UTF-8 válida) devuelve la versión en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
