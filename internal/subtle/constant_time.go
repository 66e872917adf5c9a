// Package subtle implements the constant-time byte helpers used by
// the decoder's validation scan.
package subtle

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeByteInRange returns 1 if lo <= c <= hi and 0
// otherwise.
func ConstantTimeByteInRange(c, lo, hi uint8) int {
	// Both differences are negative only when c is strictly
	// between lo-1 and hi+1, which sets bit 8 of the AND.
	v := uint(c)
	return int(((uint(lo)-1-v)&(v-uint(hi)-1))>>8) & 1
}

// ConstantTimeFirst records the first index at which bad is set.
//
// It is the constant-time equivalent of
//
//    if failed == 0 && bad == 1 {
//        idx = i
//    }
//
// failed and bad must be 0 or 1.
func ConstantTimeFirst(failed, bad, idx, i int) int {
	return ConstantTimeSelect(failed, idx,
		ConstantTimeSelect(bad, i, idx))
}
