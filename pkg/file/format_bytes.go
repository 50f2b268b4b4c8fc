package file

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count as "1.5 KB", "200 MB", "0 Bytes".
func FormatBytes(bytes int64, decimals int) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}
	const k = 1024
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	value := float64(bytes) / math.Pow(k, float64(i))
	// 'f' then ParseFloat drops trailing zeros the same way for every unit
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[i]
}
