package base64

import "github.com/termb64/termb64/internal/subtle"

// alphabet is the RFC 4648 standard alphabet:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// Symbol returns the Base64 character for the 6-bit value v.
//
// Only the low six bits of v are used.
func Symbol(v byte) byte {
	return alphabet[v&0x3f]
}

// SymbolValue returns the 6-bit value of the Base64 character c.
//
// If c is not in the alphabet, SymbolValue returns an
// InvalidSymbolError. The padding character '=' is not in the
// alphabet.
func SymbolValue(c byte) (byte, error) {
	v, ok := revLookup(c)
	if ok == 0 {
		return 0, InvalidSymbolError{Symbol: c}
	}
	return v, nil
}

// revLookup converts the Base64 character c to its 6-bit value.
//
// ok is 1 if c is in the alphabet and 0 otherwise. When ok is 0, v
// is meaningless. It runs in constant time.
func revLookup(c byte) (v byte, ok int) {
	upper := subtle.ConstantTimeByteInRange(c, 'A', 'Z')
	lower := subtle.ConstantTimeByteInRange(c, 'a', 'z')
	digit := subtle.ConstantTimeByteInRange(c, '0', '9')
	plus := subtle.ConstantTimeByteEq(c, '+')
	slash := subtle.ConstantTimeByteEq(c, '/')

	// Shift added to c (mod 256) for each range:
	//
	//    'A' -> 0    191
	//    'a' -> 26   185
	//    '0' -> 52   4
	//    '+' -> 62   19
	//    '/' -> 63   16
	//
	// At most one range matches, so OR is enough to combine them.
	s := -upper&191 |
		-lower&185 |
		-digit&4 |
		-plus&19 |
		-slash&16
	return byte(int(c)+s) & 0x3f, upper | lower | digit | plus | slash
}
