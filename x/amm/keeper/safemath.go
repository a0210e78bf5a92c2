package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// IntSqrt returns floor(sqrt(x)) using Newton's method on integers.
func IntSqrt(x math.Int) (math.Int, error) {
	if x.IsNil() || x.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("square root needs a non-negative operand")
	}
	if x.LT(math.NewInt(2)) {
		return x, nil
	}

	z := x
	y := x.QuoRaw(2).AddRaw(1)
	for y.LT(z) {
		z = y
		y = x.Quo(y).Add(y).QuoRaw(2)
	}
	return z, nil
}

// MulDiv returns floor(a*b/d). The intermediate product is taken at full
// precision, so it cannot overflow before the division.
func MulDiv(a, b, d math.Int) (math.Int, error) {
	if a.IsNil() || b.IsNil() || d.IsNil() {
		return math.Int{}, types.ErrOverflow.Wrap("nil operand")
	}
	if d.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}

	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	prod.Quo(prod, d.BigInt())
	if prod.BitLen() > math.MaxBitLen {
		return math.Int{}, types.ErrOverflow.Wrapf("muldiv result exceeds %d bits", math.MaxBitLen)
	}
	return math.NewIntFromBigInt(prod), nil
}

// SafeMul returns a*b at full precision, failing instead of panicking when
// the product leaves the representable range.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsNil() || b.IsNil() {
		return math.Int{}, types.ErrOverflow.Wrap("nil operand")
	}

	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if prod.BitLen() > math.MaxBitLen {
		return math.Int{}, types.ErrOverflow.Wrapf("product exceeds %d bits", math.MaxBitLen)
	}
	return math.NewIntFromBigInt(prod), nil
}
