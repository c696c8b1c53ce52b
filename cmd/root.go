// Package cmd implements the maned-courier command line interface: a small
// utility for local Kafka topic/produce/consume workflows.
package cmd

import (
	"errors"
	"strings"

	"github.com/OliveiraNt/maned-courier/internal/config"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/infrastructure/kafka"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultBootstrapServers = "127.0.0.1:9092"
	defaultConfigPath       = "maned-courier.yml"
)

// newFactory builds the real client factory; tests swap it for fakes.
var newFactory = func(cfg config.ClusterConfig) domain.ClientFactory {
	return kafka.NewFactory(cfg)
}

func init() {
	viper.SetEnvPrefix("MANED_COURIER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// NewRootCmd builds the command tree. A fresh tree per invocation keeps
// flag state isolated, which matters for tests.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "maned-courier",
		Short:        "Create, produce to, and consume from Kafka topics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errors.New("no command specified")
		},
	}

	root.PersistentFlags().String("bootstrap-servers", defaultBootstrapServers, "Kafka bootstrap servers (comma separated)")
	root.PersistentFlags().String("config", "", "Path to a yaml cluster config file (TLS/SASL settings)")
	root.PersistentFlags().String("client-id", "", "Client id sent to the brokers")

	root.AddCommand(newCreateTopicCmd(), newProduceCmd(), newConsumeCmd())
	return root
}

// Execute runs the CLI and reports whether the invoked command failed.
func Execute() error {
	return NewRootCmd().Execute()
}

// stringOption resolves a global option: explicit flag first, then the
// MANED_COURIER_* env var, then the flag default. The bool reports whether
// the value was set explicitly rather than defaulted.
func stringOption(cmd *cobra.Command, name string) (string, bool) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v, true
	}
	if v := viper.GetString(name); v != "" {
		return v, true
	}
	v, _ := cmd.Flags().GetString(name)
	return v, false
}

// resolveFactory assembles the effective cluster configuration (config file
// as the base, flags and env on top) and returns a client factory for it.
func resolveFactory(cmd *cobra.Command) (domain.ClientFactory, error) {
	path, explicit := stringOption(cmd, "config")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path, explicit, "", "")
	if err != nil {
		return nil, err
	}

	bootstrap, bootstrapSet := stringOption(cmd, "bootstrap-servers")
	if bootstrapSet || len(cfg.Brokers) == 0 {
		cfg.Brokers = config.SplitBrokers(bootstrap)
	}
	if clientID, ok := stringOption(cmd, "client-id"); ok {
		cfg.ClientID = clientID
	}

	return newFactory(cfg), nil
}
