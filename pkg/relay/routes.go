package relay

import (
	"net/url"
	"strings"
)

// Path parameter names used by the route templates.
const (
	PathParamNetwork     = "network"
	PathParamAddress     = "address"
	PathParamPairAddress = "pair_address"
)

// Route maps one inbound GET path onto one upstream path.
type Route struct {
	// Name identifies the route in logs and metrics
	Name string

	// Summary is a one-line description for docs and the route listing
	Summary string

	// Path is the inbound ServeMux pattern path, e.g. "/token-info/{network}/{address}"
	Path string

	// IdentifierParam is the path parameter holding the address: "address" or "pair_address"
	IdentifierParam string

	// UpstreamPath is the gateway path template using the same placeholders as Path
	UpstreamPath string

	// Params lists the query parameters the route accepts; anything else is dropped
	Params []Param
}

// BuildUpstreamPath substitutes the normalized network and identifier into UpstreamPath.
// The identifier is path-escaped.
func (r Route) BuildUpstreamPath(network, identifier string) string {
	return strings.NewReplacer(
		"{"+PathParamNetwork+"}", url.PathEscape(network),
		"{"+r.IdentifierParam+"}", url.PathEscape(identifier),
	).Replace(r.UpstreamPath)
}

var (
	RouteTokenInfo = Route{
		Name:            "token-info",
		Summary:         "Token metadata",
		Path:            "/token-info/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/token/{network}/{address}/metadata",
	}

	RouteWalletSPLTokens = Route{
		Name:            "wallet-spl-tokens",
		Summary:         "SPL tokens held by a wallet",
		Path:            "/wallet-spl-tokens/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/account/{network}/{address}/tokens",
	}

	RouteWalletSOLBalance = Route{
		Name:            "wallet-sol-balance",
		Summary:         "Native SOL balance of a wallet",
		Path:            "/wallet-sol-balance/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/account/{network}/{address}/balance",
	}

	RouteWalletPortfolio = Route{
		Name:            "wallet-portfolio",
		Summary:         "Wallet portfolio (SOL, tokens, NFTs)",
		Path:            "/wallet-portfolio/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/account/{network}/{address}/portfolio",
	}

	RouteTokenSwaps = Route{
		Name:            "token-swaps",
		Summary:         "Swap history of a token",
		Path:            "/token-swaps/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/token/{network}/{address}/swaps",
		Params:          []Param{ParamLimit, ParamCursor},
	}

	RouteWalletSwaps = Route{
		Name:            "wallet-swaps",
		Summary:         "Swap history of a wallet",
		Path:            "/wallet-swaps/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/account/{network}/{address}/swaps",
		Params:          []Param{ParamLimit, ParamCursor},
	}

	RoutePairSwaps = Route{
		Name:            "pair-swaps",
		Summary:         "Swap history of a trading pair",
		Path:            "/pair-swaps/{network}/{pair_address}",
		IdentifierParam: PathParamPairAddress,
		UpstreamPath:    "/token/{network}/pairs/{pair_address}/swaps",
		Params:          []Param{ParamLimit, ParamCursor},
	}

	RouteTokenPrice = Route{
		Name:            "token-price",
		Summary:         "Token price and liquidity",
		Path:            "/token-price/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/token/{network}/{address}/price",
	}

	RouteTokenPairs = Route{
		Name:            "token-pairs",
		Summary:         "Trading pairs of a token",
		Path:            "/token-pairs/{network}/{address}",
		IdentifierParam: PathParamAddress,
		UpstreamPath:    "/token/{network}/{address}/pairs",
		Params:          []Param{ParamLimit, ParamCursor},
	}

	RoutePairOHLCV = Route{
		Name:            "pair-ohlcv",
		Summary:         "OHLCV candles of a trading pair",
		Path:            "/pair-ohlcv/{network}/{pair_address}",
		IdentifierParam: PathParamPairAddress,
		UpstreamPath:    "/token/{network}/pairs/{pair_address}/ohlcv",
		Params:          []Param{ParamTimeframe, ParamDaysAgo, ParamLimit, ParamCursor},
	}

	RoutePairSnipers = Route{
		Name:            "pair-snipers",
		Summary:         "Snipers of a trading pair",
		Path:            "/pair-snipers/{network}/{pair_address}",
		IdentifierParam: PathParamPairAddress,
		UpstreamPath:    "/token/{network}/pairs/{pair_address}/snipers",
		Params:          []Param{ParamBlocksAfterCreation},
	}
)

// Routes returns the relayed routes in display order.
func Routes() []Route {
	return []Route{
		RouteTokenInfo,
		RouteWalletSPLTokens,
		RouteWalletSOLBalance,
		RouteWalletPortfolio,
		RouteTokenSwaps,
		RouteWalletSwaps,
		RoutePairSwaps,
		RouteTokenPrice,
		RouteTokenPairs,
		RoutePairOHLCV,
		RoutePairSnipers,
	}
}
