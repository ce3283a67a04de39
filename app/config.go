package app

import (
	"github.com/joefazee/atlas/app/user"
	"github.com/joefazee/atlas/internal/kvstore"
	"github.com/joefazee/atlas/internal/nexus"
	"github.com/joefazee/atlas/internal/restcountries"
)

type Config struct {
	Store     kvstore.Config
	Countries restcountries.Config
	User      user.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
