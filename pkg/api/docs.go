// Package api provides the HTTP surface of SolanaRelay
// @title SolanaRelay API
// @version 1.0
// @description Relay for the Moralis Solana gateway: token, wallet and pair data returned verbatim
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/SolanaRelay
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /
// @schemes http https
package api
