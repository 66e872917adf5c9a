// Package base64 implements standard Base64 encoding and decoding
// as specified by RFC 4648, over caller-supplied buffers.
//
// Buffers
//
// Encode and Decode never allocate. The output capacity is len(dst);
// EncodedLen and DecodedLen report the exact capacity a call needs.
// If dst is too short the call returns a *SizeError and writes
// nothing. The Append functions size the buffer themselves.
//
// Encoded output may be null-terminated so that it can be handed to
// code expecting a C string:
//
//    dst := make([]byte, base64.EncodedLen(2, true))
//    base64.Encode(dst, []byte("ab"), true) // "YWI=\x00"
//
// Decoding
//
// Decode is stricter than encoding/base64:
//
//    - '\r' and '\n' are rejected.
//    - Input must be padded to a multiple of four bytes.
//    - '=' is only accepted in the last two positions.
//    - Errors never come with partial output.
//
// Invalid bytes are reported as an InvalidSymbolError carrying the
// offending byte and its offset. The alphabet check runs in constant
// time for the length of the input.
package base64
