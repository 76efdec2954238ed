package common

// Version is the relay build version, overridden at build time with
// -ldflags "-X github.com/goran-ethernal/SolanaRelay/internal/common.Version=...".
var Version = "dev"
