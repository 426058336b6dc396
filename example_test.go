package conf_test

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"
)

// ServerConfig implements both Defaulter and Validator from the config package.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// SetDefaults sets default values for the configuration.
func (c *ServerConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = 30
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// ServerService is a service that depends on config.
type ServerService struct {
	Config *ServerConfig
	Health string
}

// Address returns the server address from config.
func (s *ServerService) Address() string {
	return fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
}

// Example_appWithConfigIntegration loads two files into the app, decodes a
// section into a typed struct and reads an expanded placeholder value.
func Example_appWithConfigIntegration() {
	serviceModule := fx.Module("service",
		fx.Provide(config.Provider(new(ServerConfig), "server")),
		fx.Provide(func(cfg *ServerConfig, store *config.Store) *ServerService {
			return &ServerService{
				Config: cfg,
				Health: fmt.Sprint(store.Get("endpoints.health", "")),
			}
		}),
	)

	var service *ServerService

	app := conf.NewApp(
		conf.WithLogLevel("error"),
		conf.WithConfigFiles("testdata/app.yaml", "testdata/override.json"),
		conf.WithModules(serviceModule, fx.Populate(&service)),
	)

	err := app.Start(context.Background())
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop(context.Background()) }()

	fmt.Printf("Server address: %s\n", service.Address())
	fmt.Printf("Timeout: %d\n", service.Config.Timeout)
	fmt.Printf("Health: %s\n", service.Health)
	// Output:
	// Server address: api.example.com:9443
	// Timeout: 30
	// Health: http://api.example.com:9443/healthz
}
