package kafkaconn

import (
	"errors"
	"strings"

	"github.com/joeydtaylor/kafkaconn/pkg/credstore"
	"github.com/magiconair/properties"
)

// SecurityConfig is either PlaintextConfig or SSLConfig.
type SecurityConfig interface {
	Mode() SecurityMode
	apply(m *ConfigMap)
}

// PlaintextConfig carries no TLS settings.
type PlaintextConfig struct{}

func (PlaintextConfig) Mode() SecurityMode { return Plaintext }
func (PlaintextConfig) apply(*ConfigMap)   {}

// SSLConfig points at the generated truststore and keystore. StoreSet is
// the ID embedded in both file names.
type SSLConfig struct {
	StoreSet   string
	Truststore credstore.Store
	Keystore   credstore.Store
}

func (SSLConfig) Mode() SecurityMode { return SSL }

func (c SSLConfig) apply(m *ConfigMap) {
	m.Set(SSLTruststoreTypeConfig, c.Truststore.Type)
	m.Set(SSLTruststoreLocationConfig, c.Truststore.Location)
	m.Set(SSLTruststorePasswordConfig, c.Truststore.Password)
	m.Set(SSLKeystoreTypeConfig, c.Keystore.Type)
	m.Set(SSLKeystoreLocationConfig, c.Keystore.Location)
	m.Set(SSLKeystorePasswordConfig, c.Keystore.Password)
}

// Result is one resolved connection configuration.
type Result struct {
	BootstrapServers []string
	Security         SecurityConfig
}

// Protocol is the security.protocol value.
func (r Result) Protocol() SecurityMode {
	if r.Security == nil {
		return Plaintext
	}
	return r.Security.Mode()
}

// ConfigMap renders the result in the fixed key order.
func (r Result) ConfigMap() ConfigMap {
	var m ConfigMap
	m.Set(SecurityProtocolConfig, string(r.Protocol()))
	m.Set(BootstrapServersConfig, strings.Join(r.BootstrapServers, ","))
	if r.Security != nil {
		r.Security.apply(&m)
	}
	return m
}

// Properties renders the result as a flat properties view.
func (r Result) Properties() *properties.Properties {
	return r.ConfigMap().Properties()
}

// Close removes the store files of an SSL result. Builds never call it; the
// files otherwise live until the OS cleans its temp directory.
func (r Result) Close() error {
	ssl, ok := r.Security.(SSLConfig)
	if !ok {
		return nil
	}
	return errors.Join(ssl.Truststore.Remove(), ssl.Keystore.Remove())
}
