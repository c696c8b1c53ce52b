package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClusterConfig holds cluster connectivity and security configuration.
// One invocation of the tool talks to exactly one cluster; the struct is
// assembled once and handed to every client constructor.
type ClusterConfig struct {
	Brokers  []string    `yaml:"brokers" json:"brokers"`
	ClientID string      `yaml:"client_id,omitempty" json:"client_id,omitempty"`
	TLS      *TLSConfig  `yaml:"tls,omitempty" json:"tls,omitempty"`
	SASL     *SASLConfig `yaml:"sasl,omitempty" json:"sasl,omitempty"`
	AWS      *AWSConfig  `yaml:"aws,omitempty" json:"aws,omitempty"`
}

// TLSConfig holds TLS related fields.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	CAFile             string `yaml:"ca_file,omitempty" json:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty" json:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty" json:"key_file,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty" json:"insecure_skip_verify,omitempty"`
}

// SASLConfig holds SASL configuration. Credentials may be provided inline or via env var names.
type SASLConfig struct {
	Mechanism   string `yaml:"mechanism,omitempty" json:"mechanism,omitempty"` // e.g. PLAIN, SCRAM-SHA-256, SCRAM-SHA-512
	Username    string `yaml:"username,omitempty" json:"username,omitempty"`
	Password    string `yaml:"password,omitempty" json:"password,omitempty"`
	UsernameEnv string `yaml:"username_env,omitempty" json:"username_env,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty" json:"password_env,omitempty"`
}

// AWSConfig holds AWS IAM SASL config. Prefer the standard AWS credential provider (env, shared creds, role).
type AWSConfig struct {
	IAM             bool   `yaml:"iam,omitempty" json:"iam,omitempty"`
	Region          string `yaml:"region,omitempty" json:"region,omitempty"`
	AccessKeyEnv    string `yaml:"access_key_env,omitempty" json:"access_key_env,omitempty"`
	SecretKeyEnv    string `yaml:"secret_key_env,omitempty" json:"secret_key_env,omitempty"`
	SessionTokenEnv string `yaml:"session_token_env,omitempty" json:"session_token_env,omitempty"`
}

// Read loads a cluster configuration from a yaml file.
func Read(path string) (ClusterConfig, error) {
	var cfg ClusterConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Load resolves the effective cluster configuration. The optional config
// file is the base; bootstrapServers and clientID, when non-empty,
// override it. A missing file is only an error when the path was given
// explicitly.
func Load(path string, explicit bool, bootstrapServers, clientID string) (ClusterConfig, error) {
	var cfg ClusterConfig
	if path != "" {
		c, err := Read(path)
		if err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		} else {
			cfg = c
		}
	}
	if bootstrapServers != "" {
		cfg.Brokers = SplitBrokers(bootstrapServers)
	}
	if clientID != "" {
		cfg.ClientID = clientID
	}
	return cfg, nil
}

// SplitBrokers turns a comma separated bootstrap server list into broker addresses.
func SplitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// GetAuthType returns a human-readable authentication type based on the cluster config
func (c *ClusterConfig) GetAuthType() string {
	if c.AWS != nil && c.AWS.IAM {
		return "AWS IAM"
	}

	if c.SASL != nil && c.SASL.Mechanism != "" {
		mechanism := c.SASL.Mechanism
		if c.TLS != nil && c.TLS.Enabled {
			return "SASL/" + mechanism + " + TLS"
		}
		return "SASL/" + mechanism
	}

	if c.TLS != nil && c.TLS.Enabled {
		if c.TLS.CertFile != "" && c.TLS.KeyFile != "" {
			return "mTLS"
		}
		return "TLS"
	}

	return "PLAINTEXT"
}
