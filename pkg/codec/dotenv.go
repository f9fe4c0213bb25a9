package codec

import (
	"io"
	"strings"

	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/joho/godotenv"
)

type dotenvCodec struct{}

// Dotenv writes KAFKA_-prefixed variables, e.g. ssl.keystore.location
// becomes KAFKA_SSL_KEYSTORE_LOCATION. Keys are sorted.
var Dotenv Codec = dotenvCodec{}

func (dotenvCodec) Encode(w io.Writer, cm kafkaconn.ConfigMap) error {
	env := make(map[string]string, cm.Len())
	cm.Range(func(k, v string) bool {
		env[EnvKey(k)] = v
		return true
	})
	out, err := godotenv.Marshal(env)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

func (dotenvCodec) ContentType() string { return "text/plain" }

// EnvKey maps a client config key to its environment variable name.
func EnvKey(key string) string {
	return "KAFKA_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}
