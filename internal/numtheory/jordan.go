package numtheory

import "github.com/born-ml/mega/internal/numerr"

// JordanTotient evaluates the generalized totient J_k(n) of this library.
type JordanTotient struct {
	n int64
	k int64
}

// NewJordanTotient creates J_k(n). n must be positive and k non-negative.
func NewJordanTotient(n, k int64) (*JordanTotient, error) {
	if n <= 0 {
		return nil, numerr.Invalid("jordan totient: n must be positive, got %d", n)
	}
	if k < 0 {
		return nil, numerr.Invalid("jordan totient: k must be >= 0, got %d", k)
	}
	return &JordanTotient{n: n, k: k}, nil
}

// N returns the argument n.
func (j *JordanTotient) N() int64 { return j.n }

// K returns the order k.
func (j *JordanTotient) K() int64 { return j.k }

// Compute returns Π (p^k - 1)^e over the factorization n = Π p^e. This agrees
// with Jordan's J_k on square-free n (J_2(6) = 24, J_1(10) = 4) and gives
// J_2(12) = 72, J_2(100) = 5184.
//
// J_0 is defined as 0 for every n, including n = 1. For k >= 1, n = 1 yields
// the empty product 1. A result that does not fit in int64 yields
// numerr.ErrOverflow.
func (j *JordanTotient) Compute() (int64, error) {
	if j.k == 0 {
		return 0, nil
	}
	factors, _ := Factorize(j.n)
	if len(factors) > 0 && j.k >= 63 {
		// p^k >= 2^63 for every prime p.
		return 0, numerr.Overflow("jordan totient J_%d(%d)", j.k, j.n)
	}

	result := int64(1)
	for _, f := range factors {
		pk, ok := IPow(f.Prime, j.k)
		if !ok {
			return 0, numerr.Overflow("jordan totient J_%d(%d)", j.k, j.n)
		}
		term, ok := IPow(pk-1, int64(f.Exponent))
		if !ok {
			return 0, numerr.Overflow("jordan totient J_%d(%d)", j.k, j.n)
		}
		if result, ok = mulChecked(result, term); !ok {
			return 0, numerr.Overflow("jordan totient J_%d(%d)", j.k, j.n)
		}
	}
	return result, nil
}
