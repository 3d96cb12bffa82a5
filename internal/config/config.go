package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/orgdesk/orgdesk/pkg/log"
)

// Server describes the remote organization-management API.
type Server struct {
	BaseURL string
	// Timeout of zero means no client-side timeout; a hung call
	// hangs the issuing command.
	Timeout time.Duration
}

// Session describes where the access token is kept between runs.
type Session struct {
	File string
}

type AppConfig struct {
	Log     log.Conf
	Server  Server
	Session Session
}

// SetDefaults returns a usable configuration for when no config file exists.
func SetDefaults() *AppConfig {
	return &AppConfig{
		Log: *log.SetDefaults(),
		Server: Server{
			BaseURL: "http://localhost:5000",
		},
		Session: Session{
			File: defaultSessionFile(),
		},
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".orgdesk_session"
	}
	return filepath.Join(dir, "orgdesk", "session")
}
