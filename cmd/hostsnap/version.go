package main

// Overridden at build time:
//
//	go build -ldflags "-X main.version=0.3.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version = "0.3.0"
	commit  = "dev"
)
