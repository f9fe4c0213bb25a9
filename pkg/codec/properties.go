package codec

import (
	"io"

	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/magiconair/properties"
)

type propertiesCodec struct{}

// Properties writes a Java .properties file, ready for a JVM client's
// --command-config or similar.
var Properties Codec = propertiesCodec{}

func (propertiesCodec) Encode(w io.Writer, cm kafkaconn.ConfigMap) error {
	_, err := cm.Properties().Write(w, properties.UTF8)
	return err
}

func (propertiesCodec) ContentType() string { return "text/x-java-properties" }
