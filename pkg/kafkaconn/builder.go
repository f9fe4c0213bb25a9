// Package kafkaconn turns a platform-provided KAFKA_URL and PEM certificate
// variables into Kafka client configuration.
//
// Variables read from the Source:
//
//	KAFKA_URL              = "kafka+ssl://host1:9096,kafka+ssl://host2:9096" (required)
//	KAFKA_TRUSTED_CERT     = PEM CA certificate(s)    (SSL only)
//	KAFKA_CLIENT_CERT      = PEM client certificate   (SSL only)
//	KAFKA_CLIENT_CERT_KEY  = PEM client private key   (SSL only)
//
// For SSL, every build writes a fresh PKCS12 truststore and keystore with
// new random passwords. The files are not removed; see Result.Close.
package kafkaconn

import (
	"errors"

	"github.com/google/uuid"
	"github.com/joeydtaylor/kafkaconn/pkg/credstore"
	"github.com/joeydtaylor/kafkaconn/pkg/envsource"
	"github.com/joeydtaylor/kafkaconn/pkg/metrics"
	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// Environment variable names.
const (
	EnvURL           = "KAFKA_URL"
	EnvTrustedCert   = "KAFKA_TRUSTED_CERT"
	EnvClientCert    = "KAFKA_CLIENT_CERT"
	EnvClientCertKey = "KAFKA_CLIENT_CERT_KEY"
)

// Builder resolves connection configuration from a Source.
type Builder struct {
	src    envsource.Source
	log    *zap.Logger
	stores credstore.Writer
}

type Option func(*Builder)

// WithSource replaces the process environment as the variable source.
func WithSource(src envsource.Source) Option {
	return func(b *Builder) {
		if src != nil {
			b.src = src
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithStoreDir sets where store files are created. Empty means os.TempDir.
func WithStoreDir(dir string) Option { return func(b *Builder) { b.stores.Dir = dir } }

// WithPasswordLength sets the generated store password length.
func WithPasswordLength(n int) Option { return func(b *Builder) { b.stores.PasswordLength = n } }

func New(opts ...Option) *Builder {
	b := &Builder{
		src: envsource.Env(),
		log: zap.NewNop(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build resolves the configuration. Errors are *MissingConfigurationError,
// *InvalidArgumentError, or wrapped store I/O failures.
func (b *Builder) Build() (Result, error) {
	res, mode, err := b.build()
	metrics.ObserveBuild(string(mode), outcome(err))
	if err != nil {
		b.log.Debug("kafka connection config failed", zap.Error(err))
		return Result{}, err
	}
	return res, nil
}

// BuildConfigMap is Build rendered as an ordered key/value map.
func (b *Builder) BuildConfigMap() (ConfigMap, error) {
	res, err := b.Build()
	if err != nil {
		return ConfigMap{}, err
	}
	return res.ConfigMap(), nil
}

// BuildConfigProperties is Build rendered as a flat properties view.
func (b *Builder) BuildConfigProperties() (*properties.Properties, error) {
	res, err := b.Build()
	if err != nil {
		return nil, err
	}
	return res.Properties(), nil
}

// BuildConfigMap reads the process environment.
func BuildConfigMap() (ConfigMap, error) { return New().BuildConfigMap() }

// BuildConfigProperties reads the process environment.
func BuildConfigProperties() (*properties.Properties, error) { return New().BuildConfigProperties() }

func (b *Builder) build() (Result, SecurityMode, error) {
	cs, err := ParseConnectionString(envsource.Get(b.src, EnvURL))
	if err != nil {
		return Result{}, "", err
	}

	res := Result{BootstrapServers: cs.BootstrapServers(), Security: PlaintextConfig{}}
	b.log.Debug("kafka connection string parsed",
		zap.String("protocol", string(cs.Mode)),
		zap.Strings("bootstrapServers", res.BootstrapServers),
	)
	if cs.Mode != SSL {
		return res, cs.Mode, nil
	}

	ssl, err := b.writeStores()
	if err != nil {
		return Result{}, cs.Mode, err
	}
	res.Security = ssl
	return res, cs.Mode, nil
}

func (b *Builder) writeStores() (SSLConfig, error) {
	trusted := envsource.Get(b.src, EnvTrustedCert)
	cert := envsource.Get(b.src, EnvClientCert)
	key := envsource.Get(b.src, EnvClientCertKey)

	var missing []string
	for _, v := range []struct{ name, value string }{
		{EnvTrustedCert, trusted},
		{EnvClientCert, cert},
		{EnvClientCertKey, key},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return SSLConfig{}, &InvalidArgumentError{Variables: missing}
	}

	w := b.stores
	w.SetID = uuid.NewString()
	log := b.log.With(zap.String("storeSet", w.SetID))

	ts, err := w.WriteTruststore([]byte(trusted))
	if err != nil {
		return SSLConfig{}, storeError(err)
	}
	metrics.ObserveStoreWritten(metrics.KindTruststore)

	ks, err := w.WriteKeystore([]byte(cert), []byte(key))
	if err != nil {
		if rmErr := ts.Remove(); rmErr != nil {
			log.Warn("truststore cleanup failed", zap.String("truststore", ts.Location), zap.Error(rmErr))
		}
		return SSLConfig{}, storeError(err)
	}
	metrics.ObserveStoreWritten(metrics.KindKeystore)

	log.Debug("credential stores written",
		zap.String("type", ts.Type),
		zap.String("truststore", ts.Location),
		zap.String("keystore", ks.Location),
	)
	return SSLConfig{StoreSet: w.SetID, Truststore: ts, Keystore: ks}, nil
}

var pemFieldVars = map[credstore.Field][]string{
	credstore.FieldTrustedCert: {EnvTrustedCert},
	credstore.FieldClientCert:  {EnvClientCert},
	credstore.FieldClientKey:   {EnvClientCertKey},
}

func storeError(err error) error {
	var pemErr *credstore.PEMError
	if errors.As(err, &pemErr) {
		return &InvalidArgumentError{Variables: pemFieldVars[pemErr.Field], Err: pemErr.Err}
	}
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrMissingConfiguration):
		return metrics.OutcomeMissingConfiguration
	case errors.Is(err, ErrInvalidArgument):
		return metrics.OutcomeInvalidArgument
	default:
		return metrics.OutcomeError
	}
}
