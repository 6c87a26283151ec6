package report

import (
	"strconv"
	"strings"
	"time"
)

// monthLayouts incluye los formatos de fecha integrados de Excel (14, 15, 16, 17 y 22) tal como se muestran.
var monthLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
	"1-2-06",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"Jan-06",
	"2-Jan-06",
	"2-Jan-2006",
	"2-Jan",
	"1/2/06 15:04",
	"1/2/2006 15:04",
}

// excelEpoch día cero de los seriales de fecha de Excel (sistema 1900).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// NormalizeMonth convierte el valor crudo de la columna Month al nombre del mes en inglés.
// Acepta nombres (completos o abreviados), números de mes 1-12, fechas en formatos comunes
// y seriales de Excel.
// Devuelve false si el valor no se puede interpretar.
func NormalizeMonth(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if m, ok := monthByName(s); ok {
		return m.String(), true
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Month().String(), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return time.Month(n).String(), true
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 1 && serial < 2958466 {
		return excelEpoch.AddDate(0, 0, int(serial)).Month().String(), true
	}
	return "", false
}

func monthByName(s string) (time.Month, bool) {
	lower := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if lower == name || lower == name[:3] {
			return m, true
		}
	}
	return 0, false
}
