package common

const (
	ComponentAPI           = "api"
	ComponentRelay         = "relay"
	ComponentMoralisClient = "moralis-client"
	ComponentMetrics       = "metrics"
)

var AllComponents = map[string]struct{}{
	ComponentAPI:           {},
	ComponentRelay:         {},
	ComponentMoralisClient: {},
	ComponentMetrics:       {},
}
