package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chaleco Antibalas Nivel III-A", "chaleco antibalas nivel iii-a"},
		{"Munición Calibre 9mm", "municion calibre 9mm"},
		{"CASCO BALÍSTICO", "casco balistico"},
		{"Cinturón Táctico", "cinturon tactico"},
		{"ñandú", "nandu"},
		{"", ""},
		{"sin tildes", "sin tildes"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Fold(tc.in), "Fold(%q)", tc.in)
	}
}

// Dos escrituras distintas del mismo término deben plegar al mismo valor:
// es lo que hace funcionar la búsqueda sobre description_norm.
func TestFold_BusquedaInsensible(t *testing.T) {
	assert.Equal(t, Fold("MUNICIÓN"), Fold("municion"))
	assert.Equal(t, Fold("Botas Tácticas"), Fold("botas tacticas"))
}
