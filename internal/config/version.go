package config

// Version is the storefront binary version.
// Set at build time via: -ldflags "-X github.com/redlabs/storefront/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
