// Package order defines how observed values are coerced and compared.
//
// Two string values compare lexicographically by byte, which is code point
// order for valid UTF-8. Every other pair is coerced to float64 and compared
// numerically, so 3 < "20" holds while "3" < "20" does not. A value whose
// numeric coercion yields NaN never compares less than anything and is not
// comparable on its own.
//
// Two integers compare exactly, whatever their signedness, and two
// time.Time values compare with Before, so neither loses precision to the
// float64 conversion.
//
// # Coercion
//
//	order.Number(7)            // 7
//	order.Number(" 12.5 ")     // 12.5
//	order.Number("")           // 0
//	order.Number("0x10")       // 16
//	order.Number(true)         // 1
//	order.Number(struct{}{})   // NaN
package order
