package order

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Valuer is implemented by values that carry their own numeric conversion.
// A Valuer returning NaN is treated as not comparable.
type Valuer interface {
	Value() float64
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsString reports whether v has a string kind. Named string types count.
func IsString(v any) bool {
	_, ok := stringOf(v)
	return ok
}

// Comparable reports whether v takes part in ordering: it must not be nil,
// and unless it is a string its numeric coercion must not be NaN.
func Comparable(v any) bool {
	if IsNil(v) {
		return false
	}
	if IsString(v) {
		return true
	}
	return !math.IsNaN(Number(v))
}

// Less reports whether a orders strictly before b.
func Less(a, b any) bool {
	if as, ok := stringOf(a); ok {
		if bs, ok := stringOf(b); ok {
			return as < bs
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Before(tb)
		}
	}
	if ia, ok := integerOf(a); ok {
		if ib, ok := integerOf(b); ok {
			return ia.less(ib)
		}
	}
	// NaN on either side yields false.
	return Number(a) < Number(b)
}

// integer holds a signed or unsigned integer without going through float64,
// which cannot represent every value above 2^53.
type integer struct {
	signed bool
	i      int64
	u      uint64
}

func (x integer) less(y integer) bool {
	switch {
	case x.signed && y.signed:
		return x.i < y.i
	case !x.signed && !y.signed:
		return x.u < y.u
	case x.signed:
		return x.i < 0 || uint64(x.i) < y.u
	default:
		return y.i >= 0 && x.u < uint64(y.i)
	}
}

// integerOf reports v as an exact integer. Valuers keep their own conversion.
func integerOf(v any) (integer, bool) {
	if v == nil {
		return integer{}, false
	}
	if _, ok := v.(Valuer); ok {
		return integer{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer{signed: true, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer{u: rv.Uint()}, true
	default:
		return integer{}, false
	}
}

// Number coerces v to float64. Values without a numeric meaning yield NaN.
func Number(v any) float64 {
	if IsNil(v) {
		return math.NaN()
	}

	switch x := v.(type) {
	case Valuer:
		return x.Value()
	case float64:
		return x
	case int:
		return float64(x)
	case string:
		return parseNumber(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case time.Time:
		return float64(x.UnixMilli())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(rv.String())
	default:
		return math.NaN()
	}
}

func stringOf(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// parseNumber accepts decimal literals, the Infinity spellings and unsigned
// 0x/0o/0b integers. Surrounding whitespace is ignored and the empty string
// is zero.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("0123456789+-.eE", rune(s[i])) {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals saturate.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func parseRadix(digits string, base int) float64 {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
