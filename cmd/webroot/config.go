package main

import (
	"github.com/dmitrymomot/webroot/core/server"
	"github.com/dmitrymomot/webroot/core/static"
)

// Config is the application configuration loaded from the environment.
type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"webroot"`
	Development bool   `env:"APP_DEVELOPMENT" envDefault:"false"`
	Static      static.Config
	Server      server.Config
}
