package base64

import "github.com/termb64/termb64/internal/subtle"

// DecodedLen returns the exact number of bytes Decode writes for
// src.
//
// It inspects only the length, terminator, and padding of src;
// Decode may still reject src with an InvalidSymbolError.
func (e *Encoding) DecodedLen(src []byte, nullTerminated bool) (int, error) {
	_, n, err := payload(src, nullTerminated)
	return n, err
}

// Decode decodes src into the first DecodedLen(src, nullTerminated)
// bytes of dst and returns that length. If nullTerminated is set,
// the final byte of src must be zero and is not decoded. No
// terminator is written to dst.
//
// Decode is all-or-nothing: if src is malformed or dst is too short
// it returns an error and writes nothing.
func (e *Encoding) Decode(dst, src []byte, nullTerminated bool) (int, error) {
	sym, n, err := payload(src, nullTerminated)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, &SizeError{Op: "decode", Required: n, Capacity: len(dst)}
	}
	if err := validate(sym); err != nil {
		return 0, err
	}
	if e.strict && !canonical(sym) {
		return 0, ErrNonCanonical
	}
	decode(dst, sym)
	return n, nil
}

// AppendDecode appends the decoding of src to dst and returns the
// extended buffer. On error dst is returned unchanged.
func (e *Encoding) AppendDecode(dst, src []byte, nullTerminated bool) ([]byte, error) {
	n, err := e.DecodedLen(src, nullTerminated)
	if err != nil {
		return dst, err
	}
	out := grow(dst, n)
	if _, err := e.Decode(out[len(out):len(out)+n], src, nullTerminated); err != nil {
		return dst, err
	}
	return out[:len(out)+n], nil
}

// DecodeString returns the bytes represented by the Base64 string
// s, which must not be null-terminated.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return e.AppendDecode(nil, []byte(s), false)
}

// payload strips the terminator and padding from src. It returns
// the remaining symbols, which are a prefix of src, and the number
// of bytes they decode to.
func payload(src []byte, nullTerminated bool) ([]byte, int, error) {
	if nullTerminated {
		if len(src) == 0 {
			return nil, 0, ErrMissingTerminator
		}
		last := len(src) - 1
		if src[last] != 0 {
			return nil, 0, InvalidSymbolError{Offset: last, Symbol: src[last]}
		}
		src = src[:last]
	}
	if len(src)%4 != 0 {
		return nil, 0, ErrLength
	}
	if len(src) == 0 {
		return src, 0, nil
	}

	// Padding only counts in the final two positions, and the
	// second-to-last only if the last is also padding. Any other
	// '=' is left in place for validate to reject.
	var t int
	t += subtle.ConstantTimeByteEq(src[len(src)-1], StdPadding)
	t += subtle.ConstantTimeByteEq(src[len(src)-2], StdPadding) & t
	src = src[:len(src)-t]

	// 4 symbols -> 3 bytes, 3 -> 2, 2 -> 1.
	n := len(src) / 4 * 3
	switch len(src) % 4 {
	case 3:
		n += 2
	case 2:
		n++
	}
	return src, n, nil
}

// validate checks every byte of src against the alphabet and
// reports the first invalid one.
//
// It runs in constant time for the length of src.
func validate(src []byte) error {
	// failed is set to 1 once an invalid symbol is seen.
	var failed int
	// badIdx and badChar only have value if failed != 0.
	var badIdx, badChar int
	for i, c := range src {
		_, ok := revLookup(c)
		bad := ok ^ 1
		badIdx = subtle.ConstantTimeFirst(failed, bad, badIdx, i)
		badChar = subtle.ConstantTimeFirst(failed, bad, badChar, int(c))
		failed |= bad
	}
	if failed != 0 {
		return InvalidSymbolError{Offset: badIdx, Symbol: byte(badChar)}
	}
	return nil
}

// canonical reports whether the bits that a partial final group
// discards are all zero. src must be valid.
func canonical(src []byte) bool {
	switch len(src) % 4 {
	case 3:
		// Fail if any bits in [1:0] are non-zero.
		v, _ := revLookup(src[len(src)-1])
		return v&0x3 == 0
	case 2:
		// Fail if any bits in [3:0] are non-zero.
		v, _ := revLookup(src[len(src)-1])
		return v&0xf == 0
	}
	return true
}

// decode writes the decoding of the valid, unpadded symbols src to
// dst, which must have room for it.
func decode(dst, src []byte) {
	// AAAAAA BBBBBB CCCCCC DDDDDD
	// =
	// AAAAAABB BBBBCCCC CCDDDDDD
	for len(src) >= 4 {
		c0 := value(src[0])
		c1 := value(src[1])
		c2 := value(src[2])
		c3 := value(src[3])

		dst[0] = c0<<2 | c1>>4
		dst[1] = c1<<4 | c2>>2
		dst[2] = c2<<6 | c3

		src = src[4:]
		dst = dst[3:]
	}

	switch len(src) {
	case 3:
		c0 := value(src[0])
		c1 := value(src[1])
		c2 := value(src[2])

		dst[0] = c0<<2 | c1>>4
		dst[1] = c1<<4 | c2>>2
	case 2:
		c0 := value(src[0])
		c1 := value(src[1])

		dst[0] = c0<<2 | c1>>4
	}
}

func value(c byte) byte {
	v, _ := revLookup(c)
	return v
}
