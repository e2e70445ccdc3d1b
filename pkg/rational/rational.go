// Package rational implements exact fractional arithmetic over 32-bit
// integers. It exists because the throughput math running through the bus
// placer and router must never accumulate floating-point rounding error: a
// belt that is "almost" saturated must compare equal to a belt that is
// exactly saturated when the underlying fraction is the same.
package rational

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by operations that would divide by a zero
// Rational.
var ErrDivideByZero = errors.New("rational: division by zero")

// Rational is an exact fraction num/den, always stored in lowest terms with
// a strictly positive denominator.
type Rational struct {
	num int32
	den int32
}

// Zero is the additive identity.
var Zero = Rational{num: 0, den: 1}

// New builds a Rational from a numerator and denominator, reducing it to
// lowest terms. It panics if den is zero: constructing 1/0 is a programmer
// error, not a runtime condition callers can recover from.
func New(num, den int32) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return reduce(num, den)
}

// FromInt builds a Rational equal to the whole number n.
func FromInt(n int32) Rational {
	return Rational{num: n, den: 1}
}

func reduce(num, den int32) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{num: 0, den: 1}
	}
	g := gcd(abs32(num), den)
	return Rational{num: num / g, den: den / g}
}

func gcd(a, b int32) int32 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the reduced numerator.
func (r Rational) Num() int32 { return r.num }

// Den returns the reduced denominator, always > 0.
func (r Rational) Den() int32 { return r.den }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return reduce(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return reduce(r.num*o.den-o.num*r.den, r.den*o.den)
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return reduce(r.num*o.num, r.den*o.den)
}

// Div returns r / o. It returns ErrDivideByZero if o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Zero, ErrDivideByZero
	}
	return reduce(r.num*o.den, r.den*o.num), nil
}

// Cmp returns -1, 0 or 1 as r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	lhs := r.num * o.den
	rhs := o.num * r.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// Floor returns the largest integer <= r.
func (r Rational) Floor() int32 {
	q := r.num / r.den
	if r.num%r.den != 0 && r.num < 0 {
		q--
	}
	return q
}

// Ceil returns the smallest integer >= r.
func (r Rational) Ceil() int32 {
	q := r.num / r.den
	if r.num%r.den != 0 && r.num > 0 {
		q++
	}
	return q
}

// String renders r as "num/den", or a bare integer when den == 1.
func (r Rational) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
