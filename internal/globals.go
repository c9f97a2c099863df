package internal

import (
	"os"
	"path/filepath"
)

var (
	DefaultAppName          = "ghostbank"
	DefaultAppCMDShortCut   = "gb"
	DefaultConfigFolderName = DefaultAppName
	DefaultConfigPath       = filepath.Join(os.Getenv("HOME"), ".config", DefaultConfigFolderName)
	DefaultDotDir           = "." + DefaultConfigFolderName
	DefaultConfigFile       = filepath.Join(DefaultDotDir, "config.json")
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.json")
)
