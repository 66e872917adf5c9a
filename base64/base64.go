package base64

// StdPadding is the padding character '='.
const StdPadding = '='

// StdEncoding is the standard Base64 encoding with '=' padding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{}

// Encoding is the RFC 4648 standard Base64 encoding.
//
// The zero value is ready to use and equivalent to StdEncoding.
type Encoding struct {
	strict bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648).
//
// Strict Encodings reject every input that Encode would not have
// produced.
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding of n
// source bytes, plus one if nullTerminate is set.
func (e *Encoding) EncodedLen(n int, nullTerminate bool) int {
	n = (n + 2) / 3 * 4
	if nullTerminate {
		n++
	}
	return n
}

// MaxDecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
//
// Use DecodedLen for the exact length of a particular input.
func (e *Encoding) MaxDecodedLen(n int) int {
	return n / 4 * 3
}

// grow returns b with room for at least n more bytes.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}

// EncodedLen calls StdEncoding.EncodedLen.
func EncodedLen(n int, nullTerminate bool) int {
	return StdEncoding.EncodedLen(n, nullTerminate)
}

// MaxDecodedLen calls StdEncoding.MaxDecodedLen.
func MaxDecodedLen(n int) int {
	return StdEncoding.MaxDecodedLen(n)
}

// DecodedLen calls StdEncoding.DecodedLen.
func DecodedLen(src []byte, nullTerminated bool) (int, error) {
	return StdEncoding.DecodedLen(src, nullTerminated)
}

// Encode calls StdEncoding.Encode.
func Encode(dst, src []byte, nullTerminate bool) (int, error) {
	return StdEncoding.Encode(dst, src, nullTerminate)
}

// AppendEncode calls StdEncoding.AppendEncode.
func AppendEncode(dst, src []byte, nullTerminate bool) []byte {
	return StdEncoding.AppendEncode(dst, src, nullTerminate)
}

// EncodeToString calls StdEncoding.EncodeToString.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// Decode calls StdEncoding.Decode.
func Decode(dst, src []byte, nullTerminated bool) (int, error) {
	return StdEncoding.Decode(dst, src, nullTerminated)
}

// AppendDecode calls StdEncoding.AppendDecode.
func AppendDecode(dst, src []byte, nullTerminated bool) ([]byte, error) {
	return StdEncoding.AppendDecode(dst, src, nullTerminated)
}

// DecodeString calls StdEncoding.DecodeString.
func DecodeString(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}
