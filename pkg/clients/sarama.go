package clients

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
)

// SaramaConfig returns a validated sarama config and the broker list.
func SaramaConfig(cm kafkaconn.ConfigMap) (*sarama.Config, []string, error) {
	brokers, err := Brokers(cm)
	if err != nil {
		return nil, nil, err
	}
	tlsCfg, err := TLSConfig(cm)
	if err != nil {
		return nil, nil, err
	}
	cfg := sarama.NewConfig()
	if tlsCfg != nil {
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = tlsCfg
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("clients: sarama config: %w", err)
	}
	return cfg, brokers, nil
}
