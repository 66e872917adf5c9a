package subtle

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestConstantTimeByteEq(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := byte(i)
			y := byte(j)
			if (ConstantTimeByteEq(x, y) == 1) != (x == y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x == y)
			}
		}
	}
}

func TestConstantTimeByteInRangeExhaustive(t *testing.T) {
	for c := 0; c < 256; c++ {
		for lo := 0; lo < 256; lo += 7 {
			for hi := lo; hi < 256; hi += 5 {
				want := c >= lo && c <= hi
				got := ConstantTimeByteInRange(byte(c), byte(lo), byte(hi)) == 1
				if got != want {
					t.Fatalf("(%d, [%d, %d]): expected %t", c, lo, hi, want)
				}
			}
		}
	}
}

func TestConstantTimeByteInRangeRandom(t *testing.T) {
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

		c := byte(rng.Intn(256))
		lo := byte(rng.Intn(256))
		hi := lo + byte(rng.Intn(256-int(lo)))
		want := c >= lo && c <= hi
		got := ConstantTimeByteInRange(c, lo, hi) == 1
		if got != want {
			t.Fatalf("#%d: (%d, [%d, %d]): expected %t", i, c, lo, hi, want)
		}
	}
}

func TestConstantTimeFirst(t *testing.T) {
	for _, tc := range []struct {
		bad  []int
		want int
	}{
		{bad: []int{0, 0, 0, 0}, want: -1},
		{bad: []int{1, 0, 0, 0}, want: 0},
		{bad: []int{0, 0, 1, 1}, want: 2},
		{bad: []int{0, 0, 0, 1}, want: 3},
		{bad: []int{1, 1, 1, 1}, want: 0},
	} {
		idx := -1
		var failed int
		for i, b := range tc.bad {
			idx = ConstantTimeFirst(failed, b, idx, i)
			failed |= b
		}
		if idx != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.bad, tc.want, idx)
		}
	}
}
