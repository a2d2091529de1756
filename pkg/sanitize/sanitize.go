// Package sanitize limpia texto libre que llega del cliente antes de
// persistirlo: caracteres de control, delimitadores HTML y longitud máxima.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxLen longitud máxima de un campo de texto persistido.
const MaxLen = 255

var suspicious = regexp.MustCompile(`[\x00-\x1f<>]`)

// Text recorta espacios, elimina caracteres de control y los delimitadores
// < > y trunca a MaxLen runas.
func Text(s string) string {
	s = strings.TrimSpace(s)
	s = suspicious.ReplaceAllString(s, "")
	r := []rune(s)
	if len(r) > MaxLen {
		r = r[:MaxLen]
	}
	return string(r)
}
