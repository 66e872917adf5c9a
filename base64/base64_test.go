package base64

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

// TestEncodeStdlib tests Encode against the stdlib.
func TestEncodeStdlib(t *testing.T) {
	src := make([]byte, 2048)
	rng := rand.New(rand.NewSource(0x5eed))
	rng.Read(src)

	want := make([]byte, base64.StdEncoding.EncodedLen(len(src)))
	got := make([]byte, EncodedLen(len(src), false))
	if len(want) != len(got) {
		t.Fatalf("expected %d, got %d", len(want), len(got))
	}
	for i := range src {
		base64.StdEncoding.Encode(want, src[:i])
		want := want[:base64.StdEncoding.EncodedLen(i)]

		n, err := Encode(got, src[:i], false)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		got := got[:n]
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestDecodeStdlib tests Decode against the stdlib.
func TestDecodeStdlib(t *testing.T) {
	src := make([]byte, 2048)
	rng := rand.New(rand.NewSource(0xdec0de))
	rng.Read(src)

	want := make([]byte, len(src))
	got := make([]byte, len(src))
	for i := range src {
		enc := []byte(base64.StdEncoding.EncodeToString(src[:i]))

		nw, err := base64.StdEncoding.Decode(want, enc)
		if err != nil {
			t.Fatal(err)
		}
		n, err := Decode(got, enc, false)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if n != nw {
			t.Fatalf("#%d: expected %d bytes, got %d", i, nw, n)
		}
		if !bytes.Equal(want[:nw], got[:n]) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want[:nw], got[:n]))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		src := make([]byte, rng.Intn(512))
		rng.Read(src)
		term := rng.Intn(2) == 1

		enc := make([]byte, EncodedLen(len(src), term))
		if _, err := Encode(enc, src, term); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		n, err := DecodedLen(enc, term)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if n != len(src) {
			t.Fatalf("#%d: expected DecodedLen %d, got %d", i, len(src), n)
		}
		got := make([]byte, n)
		if _, err := StdEncoding.Strict().Decode(got, enc, term); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(src, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(src, got))
		}
	}
}

func TestLengthAndPadding(t *testing.T) {
	for n := 0; n < 64; n++ {
		src := bytes.Repeat([]byte{0xa5}, n)
		enc := AppendEncode(nil, src, false)
		if want := 4 * ((n + 2) / 3); len(enc) != want {
			t.Fatalf("%d: expected length %d, got %d", n, want, len(enc))
		}
		var wantPad int
		switch n % 3 {
		case 1:
			wantPad = 2
		case 2:
			wantPad = 1
		}
		pad := len(enc) - len(bytes.TrimRight(enc, "="))
		if pad != wantPad {
			t.Fatalf("%d: expected %d padding bytes, got %d", n, wantPad, pad)
		}
		term := AppendEncode(nil, src, true)
		if len(term) != len(enc)+1 || term[len(term)-1] != 0 {
			t.Fatalf("%d: bad terminator: %q", n, term)
		}
	}
}

var sinkN int

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, 8192)
	dst := make([]byte, EncodedLen(len(src), false))
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		sinkN, _ = Encode(dst, src, false)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := AppendEncode(nil, make([]byte, 8192), false)
	dst := make([]byte, MaxDecodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		sinkN, _ = Decode(dst, src, false)
	}
}
