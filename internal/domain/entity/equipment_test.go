package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipment_TotalesDerivados(t *testing.T) {
	cases := []struct {
		name          string
		servible      int
		caducado      int
		prestado      int
		totalEnBodega int
		total         int
	}{
		{"todo en cero", 0, 0, 0, 0, 0},
		{"solo servible", 10, 0, 0, 10, 10},
		{"servible y caducado", 10, 2, 0, 12, 12},
		{"con material prestado", 7, 2, 3, 9, 12},
		{"todo prestado", 0, 0, 5, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := &Equipment{
				MaterialServible: tc.servible,
				MaterialCaducado: tc.caducado,
				MaterialPrestado: tc.prestado,
			}
			assert.Equal(t, tc.totalEnBodega, e.TotalEnBodega(), "totalEnBodega = servible + caducado")
			assert.Equal(t, tc.total, e.Total(), "total = totalEnBodega + prestado")
		})
	}
}

func TestValidUnit(t *testing.T) {
	for _, u := range []string{UnitEA, UnitUN, UnitQT, UnitRL, UnitPR, UnitGL} {
		assert.True(t, ValidUnit(u), "unidad %s debe ser válida", u)
	}
	assert.False(t, ValidUnit("KG"))
	assert.False(t, ValidUnit(""))
	assert.False(t, ValidUnit("ea"), "las unidades son case sensitive")
}
