package orders

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// numberPattern es el formato del número de orden: ORD-<unix millis>-<0..999>.
var numberPattern = regexp.MustCompile(`^ORD-\d+-\d{1,3}$`)

// GenerateNumber genera un número de orden compuesto por el timestamp actual
// en milisegundos y un sufijo aleatorio 0..999. La unicidad es probabilística;
// el índice único de numero_orden en la base de datos es el respaldo real
// ante una colisión.
func GenerateNumber() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// ValidNumber indica si s tiene el formato de número de orden.
func ValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}
