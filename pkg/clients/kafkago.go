package clients

import (
	"time"

	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/segmentio/kafka-go"
)

// KafkaGoDialer returns a segmentio/kafka-go dialer for readers and
// low-level connections.
func KafkaGoDialer(cm kafkaconn.ConfigMap, timeout time.Duration) (*kafka.Dialer, error) {
	tlsCfg, err := TLSConfig(cm)
	if err != nil {
		return nil, err
	}
	return &kafka.Dialer{
		Timeout:   timeout,
		DualStack: true,
		TLS:       tlsCfg,
	}, nil
}

// KafkaGoTransport returns a kafka-go transport carrying the TLS settings.
// TLS is nil for PLAINTEXT.
func KafkaGoTransport(cm kafkaconn.ConfigMap) (*kafka.Transport, error) {
	tlsCfg, err := TLSConfig(cm)
	if err != nil {
		return nil, err
	}
	return &kafka.Transport{TLS: tlsCfg}, nil
}

// KafkaGoWriter returns a kafka-go writer for topic over the configured
// brokers. The caller owns Close.
func KafkaGoWriter(cm kafkaconn.ConfigMap, topic string) (*kafka.Writer, error) {
	brokers, err := Brokers(cm)
	if err != nil {
		return nil, err
	}
	tr, err := KafkaGoTransport(cm)
	if err != nil {
		return nil, err
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: false,
		Transport:              tr,
	}, nil
}
