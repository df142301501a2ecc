package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wtask/dian/internal/config"
	"github.com/wtask/dian/pkg/semver"
)

type (
	// Configuration - server configuration
	Configuration struct {
		// Port - listen port, number or service name
		Port string
		config.Relay
	}
)

var (
	// Config - current configuration of the server
	Config = Configuration{}

	// BinaryName - name of run application binary
	BinaryName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))

	// version - overwritten at build time with -ldflags "-X main.version=..."
	version = "0.2.0"

	// Version - app version fingerprint
	Version = semver.MustParse(version).String()
)

func init() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s port\n", BinaryName)
		os.Exit(1)
	}
	Config.Port = os.Args[1]

	if err := config.Load(&Config.Relay); err != nil {
		fmt.Fprintf(os.Stderr, "%s (v%s) error:\n\n\t%s\n", BinaryName, Version, err)
		os.Exit(1)
	}
}
