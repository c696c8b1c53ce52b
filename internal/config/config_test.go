package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
brokers:
  - broker1:9092
  - broker2:9092
client_id: courier-test
sasl:
  mechanism: SCRAM-SHA-256
  username: u
  password: p
`)

	cfg, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Brokers)
	require.Equal(t, "courier-test", cfg.ClientID)
	require.NotNil(t, cfg.SASL)
	require.Equal(t, "SCRAM-SHA-256", cfg.SASL.Mechanism)
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Read(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
brokers: ["file:9092"]
client_id: from-file
`)

	cfg, err := Load(path, true, "flag1:9092, flag2:9092", "from-flag")
	require.NoError(t, err)
	require.Equal(t, []string{"flag1:9092", "flag2:9092"}, cfg.Brokers)
	require.Equal(t, "from-flag", cfg.ClientID)
}

func TestLoad_FileValuesKeptWhenFlagsEmpty(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
brokers: ["file:9092"]
client_id: from-file
`)

	cfg, err := Load(path, true, "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"file:9092"}, cfg.Brokers)
	require.Equal(t, "from-file", cfg.ClientID)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope.yml")

	// implicit default path: missing file is fine, flags still apply
	cfg, err := Load(missing, false, "127.0.0.1:9092", "")
	require.NoError(t, err)
	require.Equal(t, []string{"127.0.0.1:9092"}, cfg.Brokers)

	// explicitly requested path must exist
	_, err = Load(missing, true, "127.0.0.1:9092", "")
	require.Error(t, err)
}

func TestSplitBrokers(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"a:9092", "b:9093"}, SplitBrokers("a:9092,b:9093"))
	require.Equal(t, []string{"a:9092"}, SplitBrokers(" a:9092 , "))
	require.Nil(t, SplitBrokers(""))
}

func TestGetAuthType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		cfg  ClusterConfig
		want string
	}{
		{"plaintext", ClusterConfig{}, "PLAINTEXT"},
		{"tls", ClusterConfig{TLS: &TLSConfig{Enabled: true}}, "TLS"},
		{"mtls", ClusterConfig{TLS: &TLSConfig{Enabled: true, CertFile: "c", KeyFile: "k"}}, "mTLS"},
		{"sasl", ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}}, "SASL/PLAIN"},
		{"sasl+tls", ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}, TLS: &TLSConfig{Enabled: true}}, "SASL/PLAIN + TLS"},
		{"aws", ClusterConfig{AWS: &AWSConfig{IAM: true}}, "AWS IAM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.cfg.GetAuthType())
		})
	}
}
