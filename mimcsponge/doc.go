/*
Package mimcsponge implements the MiMC-Sponge permutation and the rate-1/
capacity-1 sponge construction built on top of it — the algebraic hash this
repository's Merkle Sum Tree uses for every parent-combination step
(build_parent). Leaf identifier digests do not go through this package: they
use BLAKE2s (see SPEC_FULL.md §F-3.2).

# The permutation

Hash(xL, xR, k) runs 220 Feistel-like rounds over the field:

	for i in 0..220:
	    t  = xL + k
	    if i > 0: t = t + C[i]
	    t  = t^5
	    tmp = xR + t
	    if i < 219: xR, xL = xL, tmp   // swap
	    else:       xR = tmp            // last round: no swap

C[0] is logically zero and is skipped in round 0 — the round-constant table
still carries it as an explicit "0" entry so C's length and the round
counter stay in lockstep.

# The sponge

MultiHash absorbs an arbitrary-length slice of field elements at rate 1,
capacity 1, running the permutation once per absorbed element, then
squeezes n_out elements by running the permutation once per additional
output:

	r, c := 0, 0
	for _, e := range arr {
	    r += e
	    r, c = Hash(r, c, key)
	}
	out := [r]
	for range n_out-1 {
	    r, c = Hash(r, c, key)
	    out = append(out, r)
	}

Byte-for-byte equivalence with the circom/circomlib reference implementation
is mandatory (callers verify MiMC-Sponge proofs both inside arithmetic
circuits and against this library, and the two must agree), which is why the
round-constant table (constants.go) is not hand-picked: it is exactly the
circomlib generator's output.

# Round-constant derivation

circomlib derives its table deterministically: seed the ASCII string
"mimcsponge", Keccak-256 it once, then Keccak-256 the previous 32-byte
digest 219 more times. Constant i (1 <= i <= 219) is the big-endian integer
of the i-th iterated digest, reduced into the field; constant 0 is zero.
constants.go embeds the resulting 220 decimal strings directly rather than
recomputing Keccak at init time, the same way the source embeds its table
instead of deriving it on every process start.
*/
package mimcsponge
