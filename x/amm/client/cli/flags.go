package cli

import (
	"fmt"
	"strings"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// Flag names used by the amm commands
const (
	FlagFeeBps       = "fee-bps"
	FlagMinAmountOut = "min-amount-out"
	FlagRecipient    = "recipient"
	FlagPools        = "pools"
)

// parseAsset parses a CLI asset argument. The literal "native" selects the
// chain's native asset; anything else is treated as a fungible denom.
func parseAsset(arg string) (types.Asset, error) {
	var asset types.Asset
	if strings.EqualFold(arg, "native") {
		asset = types.NativeAsset()
	} else {
		asset = types.NewFungibleAsset(arg)
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("invalid asset %q: %w", arg, err)
	}
	return asset, nil
}

// parseAssetPath parses a comma-separated asset path.
func parseAssetPath(arg string) ([]types.Asset, error) {
	parts := strings.Split(arg, ",")
	path := make([]types.Asset, 0, len(parts))
	for _, part := range parts {
		asset, err := parseAsset(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		path = append(path, asset)
	}
	return path, nil
}
