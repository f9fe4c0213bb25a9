// Package clients hands a resolved kafkaconn.ConfigMap to Go Kafka client
// libraries. The SSL stores are read back through the ssl.* keys, the same
// way a JVM client consumes them.
package clients

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/joeydtaylor/kafkaconn/pkg/credstore"
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
)

// Brokers splits bootstrap.servers.
func Brokers(cm kafkaconn.ConfigMap) ([]string, error) {
	raw, _ := cm.Get(kafkaconn.BootstrapServersConfig)
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("clients: %s is empty", kafkaconn.BootstrapServersConfig)
	}
	return out, nil
}

// TLSConfig returns nil for PLAINTEXT and a mutual-TLS config for SSL.
func TLSConfig(cm kafkaconn.ConfigMap) (*tls.Config, error) {
	proto, _ := cm.Get(kafkaconn.SecurityProtocolConfig)
	switch kafkaconn.SecurityMode(proto) {
	case kafkaconn.Plaintext:
		return nil, nil
	case kafkaconn.SSL:
	default:
		return nil, fmt.Errorf("clients: unsupported %s %q", kafkaconn.SecurityProtocolConfig, proto)
	}

	ts, err := store(cm, kafkaconn.SSLTruststoreTypeConfig, kafkaconn.SSLTruststoreLocationConfig, kafkaconn.SSLTruststorePasswordConfig)
	if err != nil {
		return nil, err
	}
	ks, err := store(cm, kafkaconn.SSLKeystoreTypeConfig, kafkaconn.SSLKeystoreLocationConfig, kafkaconn.SSLKeystorePasswordConfig)
	if err != nil {
		return nil, err
	}

	roots, err := credstore.LoadTruststore(ts)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	for _, c := range roots {
		pool.AddCert(c)
	}
	cert, err := credstore.LoadKeystore(ks)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		RootCAs:      pool,
		Certificates: []tls.Certificate{cert},
	}, nil
}

func store(cm kafkaconn.ConfigMap, typeKey, locKey, pwKey string) (credstore.Store, error) {
	var s credstore.Store
	for _, f := range []struct {
		key string
		dst *string
	}{
		{typeKey, &s.Type},
		{locKey, &s.Location},
		{pwKey, &s.Password},
	} {
		v, ok := cm.Get(f.key)
		if !ok || v == "" {
			return credstore.Store{}, fmt.Errorf("clients: %s is required for SSL", f.key)
		}
		*f.dst = v
	}
	return s, nil
}
