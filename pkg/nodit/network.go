package nodit

import (
	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
)

// nodeURLs maps a network to its node endpoint. Networks missing from the
// table use the Kairos test network host.
var nodeURLs = map[enum.Network]string{
	enum.NetworkMainnet: constant.KaiaMainnetNodeURL,
	enum.NetworkKairos:  constant.KaiaKairosNodeURL,
	enum.NetworkTestnet: constant.KaiaKairosNodeURL,
}

// NodeURL resolves the node endpoint for network. An empty network is mainnet.
func NodeURL(network enum.Network) string {
	if network == "" {
		network = enum.NetworkMainnet
	}
	if u, ok := nodeURLs[network]; ok {
		return u
	}
	return constant.KaiaKairosNodeURL
}
