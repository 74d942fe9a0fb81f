package ruc

import "fmt"

// Length longitud fija del RUC peruano.
const Length = 11

// Prefijos de RUC válidos según SUNAT: 10 (persona natural), 15/16/17
// (otros regímenes) y 20 (persona jurídica).
var validPrefixes = map[string]bool{
	"10": true,
	"15": true,
	"16": true,
	"17": true,
	"20": true,
}

// pesos para el cálculo del dígito de verificación del RUC (módulo 11, SUNAT).
// Se aplican a los 10 primeros dígitos, de izquierda a derecha.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// Validate verifica el formato de un RUC: 11 dígitos numéricos y prefijo
// de tipo de contribuyente válido. No valida el dígito de verificación
// (SUNAT es la fuente de verdad; ver ComputeCheckDigit para completarlo).
func Validate(ruc string) error {
	if len(ruc) != Length {
		return fmt.Errorf("ruc: debe tener %d dígitos, se recibieron %d", Length, len(ruc))
	}
	// Solo dígitos ASCII: un dígito Unicode multibyte daría 11 bytes con
	// menos de 11 dígitos reales.
	for i := 0; i < len(ruc); i++ {
		if ruc[i] < '0' || ruc[i] > '9' {
			return fmt.Errorf("ruc: solo se permiten dígitos numéricos")
		}
	}
	if !validPrefixes[ruc[:2]] {
		return fmt.Errorf("ruc: prefijo %q no corresponde a un tipo de contribuyente válido", ruc[:2])
	}
	return nil
}

// ComputeCheckDigit calcula el dígito de verificación para los 10 primeros
// dígitos de un RUC según el algoritmo módulo 11 de SUNAT.
func ComputeCheckDigit(ruc string) (byte, error) {
	if len(ruc) < 10 {
		return 0, fmt.Errorf("ruc: se requieren al menos 10 dígitos para calcular el dígito de verificación, se encontraron %d", len(ruc))
	}
	var sum int
	for i := 0; i < 10; i++ {
		d := ruc[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("ruc: carácter no numérico en posición %d", i)
		}
		sum += int(d-'0') * rucWeights[i]
	}
	check := 11 - sum%11
	return byte('0' + check%10), nil
}
