package kafka

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"time"

	"github.com/OliveiraNt/maned-courier/internal/config"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/OliveiraNt/maned-courier/internal/utils"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
	"github.com/twmb/franz-go/pkg/sasl/aws"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

// Factory creates Kafka clients from a single cluster configuration,
// implementing domain.ClientFactory using franz-go.
type Factory struct {
	cfg config.ClusterConfig
}

// NewFactory creates a client factory bound to one cluster.
func NewFactory(cfg config.ClusterConfig) *Factory {
	return &Factory{cfg: cfg}
}

// Admin creates a topic administration client.
func (f *Factory) Admin() (domain.Admin, error) {
	opts, err := f.baseOpts()
	if err != nil {
		return nil, err
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Admin{client: client, admin: kadm.NewClient(client)}, nil
}

// Producer creates a producer client. Partitioner and linger options are
// applied only when set; otherwise franz-go defaults stand.
func (f *Factory) Producer(po domain.ProducerOptions) (domain.Producer, error) {
	opts, err := f.baseOpts()
	if err != nil {
		return nil, err
	}
	if po.Partitioner != "" {
		p, err := partitionerFor(po.Partitioner)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.RecordPartitioner(p))
	}
	if po.StickyLingerMS != nil {
		opts = append(opts, kgo.ProducerLinger(time.Duration(*po.StickyLingerMS)*time.Millisecond))
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Producer{client: client}, nil
}

// Consumer creates a group consumer subscribed to a single topic.
func (f *Factory) Consumer(co domain.ConsumerOptions) (domain.Consumer, error) {
	if co.GroupID == "" {
		return nil, errors.New("consumer group id is required")
	}
	if co.Topic == "" {
		return nil, errors.New("topic is required")
	}
	opts, err := f.baseOpts()
	if err != nil {
		return nil, err
	}
	reset := kgo.NewOffset().AtEnd()
	if co.FromBeginning {
		reset = kgo.NewOffset().AtStart()
	}
	opts = append(opts,
		kgo.ConsumerGroup(co.GroupID),
		kgo.ConsumeTopics(co.Topic),
		kgo.ConsumeResetOffset(reset),
	)
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Consumer{client: client}, nil
}

// baseOpts assembles the connection options shared by every client role,
// supporting TLS, SASL and AWS IAM.
func (f *Factory) baseOpts() ([]kgo.Opt, error) {
	cfg := f.cfg
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("no bootstrap servers configured")
	}

	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Brokers...)}

	if cfg.ClientID != "" {
		opts = append(opts, kgo.ClientID(cfg.ClientID))
	}
	if cfg.TLS != nil && cfg.TLS.Enabled {
		tlsCfg, err := buildTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	if cfg.SASL != nil && cfg.SASL.Mechanism != "" {
		mech, err := buildSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, err
		}
		if mech != nil {
			opts = append(opts, kgo.SASL(mech))
		}
	}
	if cfg.AWS != nil && cfg.AWS.IAM {
		awsMech, err := buildAWSMechanism(cfg.AWS)
		if err != nil {
			return nil, err
		}
		if awsMech != nil {
			opts = append(opts, kgo.SASL(awsMech))
		}
	}

	utils.Logger.Debug("kafka client options assembled", "auth", cfg.GetAuthType(), "brokers", cfg.Brokers)
	return opts, nil
}

// buildTLSConfig reads cert files and builds a tls.Config
func buildTLSConfig(t *config.TLSConfig) (*tls.Config, error) {
	rootCAs := x509.NewCertPool()
	if t.CAFile != "" {
		b, err := os.ReadFile(t.CAFile)
		if err != nil {
			return nil, err
		}
		rootCAs.AppendCertsFromPEM(b)
	}

	var cert tls.Certificate
	if t.CertFile != "" && t.KeyFile != "" {
		c, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
		if err != nil {
			return nil, err
		}
		cert = c
	}

	cfg := &tls.Config{
		RootCAs:            rootCAs,
		InsecureSkipVerify: t.InsecureSkipVerify,
	}

	if len(cert.Certificate) > 0 {
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// buildSASLMechanism creates a franz-go sasl.Mechanism based on SASLConfig
func buildSASLMechanism(s *config.SASLConfig) (sasl.Mechanism, error) {
	username := s.Username
	password := s.Password

	if s.UsernameEnv != "" {
		if v := os.Getenv(s.UsernameEnv); v != "" {
			username = v
		}
	}
	if s.PasswordEnv != "" {
		if v := os.Getenv(s.PasswordEnv); v != "" {
			password = v
		}
	}

	switch s.Mechanism {
	case "PLAIN", "plain":
		return plain.Auth{User: username, Pass: password}.AsMechanism(), nil
	case "SCRAM-SHA-256", "SCRAM-SHA256", "scram-sha-256":
		return scram.Auth{User: username, Pass: password}.AsSha256Mechanism(), nil
	case "SCRAM-SHA-512", "SCRAM-SHA512", "scram-sha-512":
		return scram.Auth{User: username, Pass: password}.AsSha512Mechanism(), nil
	default:
		return nil, nil
	}
}

// buildAWSMechanism constructs an AWS IAM SASL mechanism
func buildAWSMechanism(a *config.AWSConfig) (sasl.Mechanism, error) {
	access := ""
	secret := ""
	session := ""

	if a != nil {
		if a.AccessKeyEnv != "" {
			access = os.Getenv(a.AccessKeyEnv)
		}
		if a.SecretKeyEnv != "" {
			secret = os.Getenv(a.SecretKeyEnv)
		}
		if a.SessionTokenEnv != "" {
			session = os.Getenv(a.SessionTokenEnv)
		}
	}

	if access == "" {
		access = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if secret == "" {
		secret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if session == "" {
		session = os.Getenv("AWS_SESSION_TOKEN")
	}

	if access == "" || secret == "" {
		return nil, nil
	}

	return aws.Auth{
		AccessKey:    access,
		SecretKey:    secret,
		SessionToken: session,
	}.AsManagedStreamingIAMMechanism(), nil
}
