package clients

import (
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/twmb/franz-go/pkg/kgo"
)

// FranzOpts returns franz-go client options: seed brokers plus TLS when the
// protocol is SSL. Append topic or group options before kgo.NewClient.
func FranzOpts(cm kafkaconn.ConfigMap) ([]kgo.Opt, error) {
	brokers, err := Brokers(cm)
	if err != nil {
		return nil, err
	}
	tlsCfg, err := TLSConfig(cm)
	if err != nil {
		return nil, err
	}
	opts := []kgo.Opt{kgo.SeedBrokers(brokers...)}
	if tlsCfg != nil {
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	return opts, nil
}
