package utils

import (
	"strconv"
	"strings"
)

const CurrencyPrefix = "Rp. "

// FormatAmount renders an amount with "." as the thousands separator and no
// decimal places, e.g. 670000 -> "670.000". Negative amounts keep a leading "-".
func FormatAmount(amount int64) string {
	str := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(str, "-") {
		sign = "-"
		str = str[1:]
	}

	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.Grow(len(sign) + n + n/3)
	b.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	return b.String()
}

func FormatRupiah(amount int64) string {
	return CurrencyPrefix + FormatAmount(amount)
}

// ParseAmount reverses FormatAmount and FormatRupiah. Input it cannot read
// yields 0.
func ParseAmount(display string) int64 {
	s := strings.TrimSpace(display)
	s = strings.TrimPrefix(s, "Rp.")
	s = strings.TrimPrefix(s, "Rp")

	cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0
	}

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return amount
}
