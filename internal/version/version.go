// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X enchrev/internal/version.Version=1.2.0"
var Version = "dev"
