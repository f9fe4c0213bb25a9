package clients

import (
	"time"

	"github.com/joeydtaylor/electrician/pkg/builder"
	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/segmentio/kafka-go"
)

// ElectricianWriter builds a kafka-go writer through electrician's builder,
// ready for builder.KafkaClientAdapterWithKafkaGoWriter. An empty clientID
// keeps electrician's default; batchTimeout <= 0 keeps kafka-go's.
func ElectricianWriter(cm kafkaconn.ConfigMap, topic, clientID string, batchTimeout time.Duration) (*kafka.Writer, error) {
	brokers, err := Brokers(cm)
	if err != nil {
		return nil, err
	}
	tlsCfg, err := TLSConfig(cm)
	if err != nil {
		return nil, err
	}

	var secOpts []builder.KafkaSecurityOption
	if clientID != "" {
		secOpts = append(secOpts, builder.WithClientID(clientID))
	}
	if tlsCfg != nil {
		secOpts = append(secOpts, builder.WithTLS(tlsCfg))
	}
	sec := builder.NewKafkaSecurity(secOpts...)

	wOpts := []builder.KafkaGoWriterOption{builder.KafkaGoWriterWithLeastBytes()}
	if batchTimeout > 0 {
		wOpts = append(wOpts, builder.KafkaGoWriterWithBatchTimeout(batchTimeout))
	}
	return builder.NewKafkaGoWriterWithSecurity(brokers, topic, sec, wOpts...), nil
}
