// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
)

// Codec renders a ConfigMap for a consumer outside this process.
type Codec interface {
	Encode(w io.Writer, cm kafkaconn.ConfigMap) error
	ContentType() string
}

type jsonCodec struct{}

// JSON writes an indented object in key order.
var JSON Codec = jsonCodec{}

func (jsonCodec) Encode(w io.Writer, cm kafkaconn.ConfigMap) error {
	raw, err := cm.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func (jsonCodec) ContentType() string { return "application/json" }
