package ct

import "github.com/MeKo-Tech/algo-dft-ct/planner"

// RadixSpec is a solver's radix "personality":
//
//   - r > 0: force radix r; applicable only if r divides n.
//   - r == 0: choose the smallest prime factor of n.
//   - r < 0: if n > |r| and |r| divides n and n/|r| is a perfect square,
//     use sqrt(n/|r|) as the radix; otherwise reject.
type RadixSpec int

func divides(a, n int) bool {
	return n%a == 0
}

// isqrt returns s such that s*s == n, or 0 if n is not a perfect square.
// n must be non-negative.
func isqrt(n int) int {
	if n < 0 {
		panic("ct: isqrt requires n >= 0")
	}
	if n == 0 {
		return 0
	}

	guess, iguess := n, 1
	for guess > iguess {
		guess = (guess + iguess) / 2
		iguess = n / guess
	}

	if guess*guess == n {
		return guess
	}
	return 0
}

// reallyChooseRadix resolves a single radix spec against n, per RadixSpec's
// three cases. It returns 0 to mean "this spec does not apply to n."
func reallyChooseRadix(spec RadixSpec, n int) int {
	switch {
	case spec > 0:
		r := int(spec)
		if divides(r, n) {
			return r
		}
		return 0
	case spec == 0:
		return planner.FirstDivisor(n)
	default:
		r := int(-spec)
		if n > r && divides(r, n) {
			return isqrt(n / r)
		}
		return 0
	}
}

// chooseRadix resolves the solver's own spec against n and enforces buddy
// uniqueness: if any buddy strictly preceding this solver's spec in the
// shared buddy list would resolve to the same concrete radix, chooseRadix
// refuses (returns 0), leaving that radix to the earlier buddy.
func chooseRadix(spec RadixSpec, buddies []RadixSpec, n int) int {
	r := reallyChooseRadix(spec, n)
	if r == 0 {
		return 0
	}

	for _, b := range buddies {
		if b == spec {
			break
		}
		if reallyChooseRadix(b, n) == r {
			return 0
		}
	}

	if r < 0 || !divides(r, n) {
		panic("ct: chooseRadix produced an invalid radix")
	}
	return r
}
