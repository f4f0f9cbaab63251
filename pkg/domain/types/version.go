package types

// Version is the buildgate release version. Overridden at build time:
//
//	go build -ldflags "-X github.com/buildgate/buildgate/pkg/domain/types.Version=v1.2.3"
var Version = "dev"
