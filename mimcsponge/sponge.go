package mimcsponge

import (
	"fmt"
	"sync"

	"github.com/AntoineCyr/merkle-sum-proof/field"
)

var (
	constantsOnce sync.Once
	constants     [len(roundConstantStrings)]field.F
)

// loadConstants lifts roundConstantStrings into the field exactly once. A
// malformed entry is a programmer error in the embedded table, not a
// runtime condition callers can recover from, so it panics at first use
// rather than threading an error through every Hash call.
func loadConstants() {
	constantsOnce.Do(func() {
		for i, s := range roundConstantStrings {
			c, err := field.FromDecimalString(s)
			if err != nil {
				panic(fmt.Sprintf("mimcsponge: invalid embedded round constant at index %d: %v", i, err))
			}
			constants[i] = c
		}
	})
}

// Hash runs the 220-round MiMC Feistel permutation on (xL, xR) keyed by k.
func Hash(xL, xR, k field.F) (field.F, field.F) {
	loadConstants()

	last := len(constants) - 1
	for i, c := range constants {
		t := field.Zero()
		t.AddAssign(xL)
		t.AddAssign(k)
		if i > 0 {
			t.AddAssign(c)
		}
		t = t.Pow(5)

		xrTmp := xR
		xrTmp.AddAssign(t)

		if i < last {
			xR = xL
			xL = xrTmp
		} else {
			xR = xrTmp
		}
	}
	return xL, xR
}

// MultiHash runs the rate-1/capacity-1 sponge over arr, keyed by key,
// producing nOut field elements. nOut must be at least 1.
func MultiHash(arr []field.F, key field.F, nOut int) []field.F {
	if nOut < 1 {
		panic("mimcsponge: MultiHash requires nOut >= 1")
	}

	r := field.Zero()
	c := field.Zero()

	for _, elem := range arr {
		r.AddAssign(elem)
		r, c = Hash(r, c, key)
	}

	out := make([]field.F, 0, nOut)
	out = append(out, r)
	for i := 1; i < nOut; i++ {
		r, c = Hash(r, c, key)
		out = append(out, r)
	}
	return out
}
