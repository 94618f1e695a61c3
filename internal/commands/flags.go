package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/config"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	ContentPath string
	Theme       string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// Loader returns the content loader for the active config. The --content
// flag wins over the config file.
func (f *Flags) Loader() content.Loader {
	l := content.Loader{}
	if f.Config != nil {
		l.Path = f.Config.ContentPath
		l.AssetsDir = f.Config.AssetsDir
	}
	if f.ContentPath != "" {
		l.Path = f.ContentPath
	}
	return l
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "fscs", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/fscs/fscs.log
// On Linux: $XDG_STATE_HOME/fscs/fscs.log (defaults to ~/.local/state/fscs/fscs.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "fscs", "fscs.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "fscs", "fscs.log")
	}

	return filepath.Join(home, ".local", "state", "fscs", "fscs.log")
}
