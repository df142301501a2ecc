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
	// Configuration - client configuration
	Configuration struct {
		Host string
		// Port - server port, number or service name
		Port string
		config.Client
	}
)

var (
	// Config - current configuration of the client
	Config = Configuration{}

	// BinaryName - name of run application binary
	BinaryName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))

	version = "0.2.0"

	// Version - application version fingerprint
	Version = semver.MustParse(version).String()
)

func init() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s hostname port\n", BinaryName)
		os.Exit(1)
	}
	Config.Host, Config.Port = os.Args[1], os.Args[2]

	if err := config.Load(&Config.Client); err != nil {
		fmt.Fprintf(os.Stderr, "%s (v%s) error:\n\n\t%s\n", BinaryName, Version, err)
		os.Exit(1)
	}
}
