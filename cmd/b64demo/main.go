// Command b64demo encodes and decodes Base64 through fixed-size
// buffers.
//
// Usage:
//
//	b64demo
//	b64demo encode [-n | --terminate] [-c CAPACITY] TEXT
//	b64demo decode [-n | --terminated] [-c CAPACITY] [--strict] BASE64
//
// Without a subcommand,
// b64demo encodes "-c4" into a null-terminated 5-byte buffer
// and decodes it back.
//
// With -c,
// the output buffer has exactly CAPACITY bytes
// instead of the size the input requires,
// so a short buffer reproduces the capacity error.
//
// With -n,
// encode appends a null terminator
// and decode treats BASE64 as null-terminated.
//
// Results are printed Go-quoted.
// Errors are printed to stderr
// and the exit status is 1.
package main

import "os"

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
