package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a rupee value in paise. All arithmetic stays in paise;
// formatting happens only at the display boundary.
type Amount int64

var ErrInvalidAmount = errors.New("invalid money amount")

// Parse accepts "₹180.00", "180.00", "180" or "180.5".
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "₹", ""))
	if s == "" {
		return 0, ErrInvalidAmount
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// Fractional part is truncated to paise precision.
	var paise int64
	switch {
	case frac == "":
	case len(frac) == 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		paise = d * 10
	default:
		d, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		paise = d
	}

	total := rupees*100 + paise
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// MustParse is for static menu data known to be well formed.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: %q: %v", s, err))
	}
	return a
}

func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, v/100, v%100)
}

// Mul scales by an integer quantity.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// ApplyBasisPoints returns a*bp/10000 rounded half-up.
// Used for tax: 500 bp = 5%.
func (a Amount) ApplyBasisPoints(bp int64) Amount {
	v := int64(a) * bp
	if v >= 0 {
		return Amount((v + 5000) / 10000)
	}
	return Amount(-((-v + 5000) / 10000))
}
