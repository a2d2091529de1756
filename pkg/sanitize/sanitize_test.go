package sanitize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/pkg/sanitize"
)

func TestText_RecortaEspacios(t *testing.T) {
	assert.Equal(t, "Tornillos", sanitize.Text("  Tornillos  "))
}

func TestText_EliminaControlYDelimitadores(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", sanitize.Text("<script>alert(1)</script>"))
	assert.Equal(t, "hola mundo", sanitize.Text("hola\x00 mundo\x1f"))
}

func TestText_TruncaAMaxLen(t *testing.T) {
	long := strings.Repeat("ñ", sanitize.MaxLen+40)
	got := sanitize.Text(long)
	assert.Equal(t, sanitize.MaxLen, len([]rune(got)), "trunca por runas, no por bytes")
}

func TestText_VacioQuedaVacio(t *testing.T) {
	assert.Equal(t, "", sanitize.Text("   "))
}
