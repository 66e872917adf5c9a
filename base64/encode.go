package base64

// Encode encodes src into the first EncodedLen(len(src),
// nullTerminate) bytes of dst and returns that length. If
// nullTerminate is set, the final byte written is zero.
//
// If dst is too short, Encode returns a *SizeError and writes
// nothing. Bytes of dst past the encoding are never touched.
func (e *Encoding) Encode(dst, src []byte, nullTerminate bool) (int, error) {
	n := e.EncodedLen(len(src), nullTerminate)
	if len(dst) < n {
		return 0, &SizeError{Op: "encode", Required: n, Capacity: len(dst)}
	}
	encode(dst, src)
	if nullTerminate {
		dst[n-1] = 0
	}
	return n, nil
}

// AppendEncode appends the encoding of src to dst and returns the
// extended buffer.
func (e *Encoding) AppendEncode(dst, src []byte, nullTerminate bool) []byte {
	n := e.EncodedLen(len(src), nullTerminate)
	dst = grow(dst, n)
	// The tail is exactly n bytes, so Encode cannot fail.
	e.Encode(dst[len(dst):len(dst)+n], src, nullTerminate)
	return dst[:len(dst)+n]
}

// EncodeToString returns the Base64 encoding of src without a
// terminator.
func (e *Encoding) EncodeToString(src []byte) string {
	return string(e.AppendEncode(nil, src, false))
}

// encode writes the padded encoding of src to dst, which must have
// room for it.
func encode(dst, src []byte) {
	// Hoist bounds checks.
	if len(src) == 0 {
		return
	}
	_ = dst[(len(src)+2)/3*4-1]

	// Convert 3 -> 4.
	//
	// AAAAAAAA BBBBBBBB CCCCCCCC
	// =
	// AAAAAA AABBBB BBBBCC CCCCCC
	for len(src) >= 3 {
		dst[0] = Symbol(src[0] >> 2)
		dst[1] = Symbol(src[0]<<4 | src[1]>>4)
		dst[2] = Symbol(src[1]<<2 | src[2]>>6)
		dst[3] = Symbol(src[2])
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		dst[0] = Symbol(src[0] >> 2)
		dst[1] = Symbol(src[0]<<4 | src[1]>>4)
		dst[2] = Symbol(src[1] << 2)
		dst[3] = StdPadding
	case 1:
		dst[0] = Symbol(src[0] >> 2)
		dst[1] = Symbol(src[0] << 4)
		dst[2] = StdPadding
		dst[3] = StdPadding
	}
}
