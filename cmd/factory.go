package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vigil-sh/vigil/internal/audit"
	"github.com/vigil-sh/vigil/internal/config"
	"github.com/vigil-sh/vigil/internal/consent"
	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/decision"
	"github.com/vigil-sh/vigil/internal/decision/metrics"
	"github.com/vigil-sh/vigil/internal/engine"
	"github.com/vigil-sh/vigil/internal/telemetry"
	"github.com/vigil-sh/vigil/pkg/client"
)

type Factory struct {
	// RemoteAddr is the address of the Vigil server to connect to.
	RemoteAddr string

	// ConfigPath is the engine configuration (owners, rules, telemetry).
	ConfigPath string
}

func NewFactory() *Factory {
	return &Factory{}
}

// GetClient returns an HTTP client for remote operations.
func (f *Factory) GetClient() (*client.Client, error) {
	server := f.RemoteAddr // prio 1: command-line flag
	if server == "" {
		server = viper.GetString(VigilAddrKey) // prio 2: config/env
	}
	if server == "" {
		return nil, fmt.Errorf("server address not configured (use --server or set VIGIL_ADDR)")
	}

	token := os.Getenv("VIGIL_TOKEN") // compliance endpoints need a token
	return client.New(server, client.WithAuthToken(token)), nil
}

func (f *Factory) LoadConfig() (*config.Config, error) {
	if f.ConfigPath == "" {
		return nil, fmt.Errorf("config file not specified (use --config)")
	}
	return config.Load(f.ConfigPath)
}

// Components holds everything a local evaluation needs.
type Components struct {
	Config  *config.Config
	Store   *consent.MemoryStore
	Auditor core.Auditor
	Service *decision.Service
}

// BuildComponents wires store, auditor, telemetry and governance rules
// from the config file. Metrics may be nil for one-shot CLI use.
func (f *Factory) BuildComponents(m *metrics.Metrics) (*Components, error) {
	cfg, err := f.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store := consent.NewMemoryStore()
	for _, owner := range cfg.Owners {
		store.Register(owner.Profile())
	}

	auditor, err := buildAuditor(cfg.Audit)
	if err != nil {
		return nil, fmt.Errorf("building auditor: %w", err)
	}

	source, err := telemetry.Build(cfg.Telemetry.Type, cfg.Telemetry.Config)
	if err != nil {
		return nil, fmt.Errorf("building telemetry source: %w", err)
	}

	svc := decision.NewService(store, auditor, source, engine.New(cfg.Rules), m)

	return &Components{
		Config:  cfg,
		Store:   store,
		Auditor: auditor,
		Service: svc,
	}, nil
}

func buildAuditor(cfg config.AuditConfig) (core.Auditor, error) {
	switch cfg.Type {
	case "", "memory":
		return audit.NewMemoryAuditor(), nil
	case "file":
		return audit.NewFileAuditor(cfg.Path)
	case "noop":
		return audit.NewNoopAuditor(), nil
	default:
		return nil, fmt.Errorf("unknown audit type %q", cfg.Type)
	}
}

func (f *Factory) bindConfigFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&f.ConfigPath, "config", "f", "", "The Vigil engine config file to use")
}
