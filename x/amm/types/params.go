package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	// DefaultFeeBps is the swap fee applied when pool creation passes fee 0.
	DefaultFeeBps = uint32(30)

	// DefaultFlashFeeBps is the flash-borrow fee in basis points.
	DefaultFlashFeeBps = uint32(5)

	// DefaultNativeDenom is the bank denom the native asset variant resolves to.
	DefaultNativeDenom = "uvtx"
)

// Params holds the AMM module parameters.
type Params struct {
	// DefaultFeeBps is used when a pool is created with fee tier 0.
	DefaultFeeBps uint32 `json:"default_fee_bps"`

	// FlashFeeBps is charged on the borrowed amount of every flash borrow.
	FlashFeeBps uint32 `json:"flash_fee_bps"`

	// NativeDenom is the bank denom backing the native asset variant.
	NativeDenom string `json:"native_denom"`
}

// DefaultParams returns the default AMM parameters.
func DefaultParams() Params {
	return Params{
		DefaultFeeBps: DefaultFeeBps,
		FlashFeeBps:   DefaultFlashFeeBps,
		NativeDenom:   DefaultNativeDenom,
	}
}

// Validate validates the parameter set.
func (p Params) Validate() error {
	if p.DefaultFeeBps < 1 || p.DefaultFeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("default fee %d bps outside [1, %d]", p.DefaultFeeBps, MaxFeeBps)
	}
	if p.FlashFeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("flash fee %d bps above %d", p.FlashFeeBps, MaxFeeBps)
	}
	if p.NativeDenom == "" {
		return ErrInvalidAsset.Wrap("native denom cannot be empty")
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return ErrInvalidAsset.Wrapf("invalid native denom %q: %v", p.NativeDenom, err)
	}
	return nil
}
