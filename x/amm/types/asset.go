package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetKind discriminates the two supported asset variants.
type AssetKind int8

const (
	// AssetKindFungible is a ledger-backed fungible token identified by denom.
	AssetKindFungible AssetKind = iota

	// AssetKindNative is the chain's native value unit.
	AssetKindNative
)

// Asset is a closed tagged variant over the two transferable asset kinds.
// Fungible assets carry a denom; the native asset carries none and resolves
// to the configured native denom at transfer time.
type Asset struct {
	Kind  AssetKind `json:"kind"`
	Denom string    `json:"denom,omitempty"`
}

// NewFungibleAsset returns the fungible variant for a denom.
func NewFungibleAsset(denom string) Asset {
	return Asset{Kind: AssetKindFungible, Denom: denom}
}

// NativeAsset returns the native-asset variant.
func NativeAsset() Asset {
	return Asset{Kind: AssetKindNative}
}

// IsNative reports whether the asset is the native variant.
func (a Asset) IsNative() bool {
	return a.Kind == AssetKindNative
}

// Validate checks structural validity of the asset identifier.
func (a Asset) Validate() error {
	switch a.Kind {
	case AssetKindNative:
		if a.Denom != "" {
			return ErrInvalidAsset.Wrap("native asset must not carry a denom")
		}
		return nil
	case AssetKindFungible:
		if a.Denom == "" {
			return ErrInvalidAsset.Wrap("fungible asset denom cannot be empty")
		}
		if err := sdk.ValidateDenom(a.Denom); err != nil {
			return ErrInvalidAsset.Wrapf("invalid denom %q: %v", a.Denom, err)
		}
		return nil
	default:
		return ErrInvalidAsset.Wrapf("unknown asset kind %d", a.Kind)
	}
}

// Key returns the canonical ordering/hashing key for the asset. The native
// variant uses a reserved sentinel that no valid denom can collide with
// ("/" is not a legal denom character in the leading position we use here).
func (a Asset) Key() string {
	if a.IsNative() {
		return "native/"
	}
	return "denom/" + a.Denom
}

// Equal reports identifier equality.
func (a Asset) Equal(b Asset) bool {
	return a.Kind == b.Kind && a.Denom == b.Denom
}

// String implements fmt.Stringer.
func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.Denom
}

// SortAssets returns the pair in canonical order (token0 < token1 under the
// total order induced by Key), independent of the caller-supplied order.
func SortAssets(a, b Asset) (Asset, Asset) {
	if strings.Compare(a.Key(), b.Key()) > 0 {
		return b, a
	}
	return a, b
}

// PoolIDLength is the byte length of a pool identifier.
const PoolIDLength = 32

// PoolID uniquely identifies a pool. It is a hash of the canonically ordered
// asset pair plus the fee tier, so it is stable and order-independent.
type PoolID [PoolIDLength]byte

// NewPoolID derives the pool identifier for an unordered asset pair and fee
// tier. It rejects identical assets and a double-native pair; fee bounds are
// validated by the caller since the zero fee means "default" at creation.
func NewPoolID(assetA, assetB Asset, feeBps uint32) (PoolID, error) {
	if err := assetA.Validate(); err != nil {
		return PoolID{}, err
	}
	if err := assetB.Validate(); err != nil {
		return PoolID{}, err
	}
	if assetA.Equal(assetB) {
		return PoolID{}, ErrIdenticalAssets.Wrapf("pool assets must differ, got %s twice", assetA)
	}
	if assetA.IsNative() && assetB.IsNative() {
		return PoolID{}, ErrIdenticalAssets.Wrap("both assets are the native asset")
	}

	token0, token1 := SortAssets(assetA, assetB)

	h := sha256.New()
	h.Write([]byte(token0.Key()))
	h.Write([]byte{0x00})
	h.Write([]byte(token1.Key()))
	h.Write([]byte{0x00})
	feeBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(feeBytes, feeBps)
	h.Write(feeBytes)

	var id PoolID
	copy(id[:], h.Sum(nil))
	return id, nil
}

// PoolIDFromString parses a hex-encoded pool identifier.
func PoolIDFromString(s string) (PoolID, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return PoolID{}, ErrInvalidPoolID.Wrapf("pool id is not valid hex: %v", err)
	}
	if len(bz) != PoolIDLength {
		return PoolID{}, ErrInvalidPoolID.Wrapf("pool id must be %d bytes, got %d", PoolIDLength, len(bz))
	}
	var id PoolID
	copy(id[:], bz)
	return id, nil
}

// Bytes returns the raw identifier bytes.
func (id PoolID) Bytes() []byte {
	return id[:]
}

// String returns the hex encoding of the identifier.
func (id PoolID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the identifier is unset.
func (id PoolID) IsZero() bool {
	return id == PoolID{}
}

// MarshalJSON encodes the identifier as a hex string.
func (id PoolID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", id.String())), nil
}

// UnmarshalJSON decodes the identifier from a hex string.
func (id *PoolID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := PoolIDFromString(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
