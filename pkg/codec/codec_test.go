package codec

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/joeydtaylor/kafkaconn/pkg/kafkaconn"
	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() kafkaconn.ConfigMap {
	var cm kafkaconn.ConfigMap
	cm.Set(kafkaconn.SecurityProtocolConfig, "SSL")
	cm.Set(kafkaconn.BootstrapServersConfig, "a:1,b:2")
	cm.Set(kafkaconn.SSLKeystoreLocationConfig, "/tmp/keystore-1.p12")
	cm.Set(kafkaconn.SSLKeystorePasswordConfig, "abc234")
	return cm
}

func TestProperties(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Properties.Encode(&buf, sample()))

	p, err := properties.Load(buf.Bytes(), properties.UTF8)
	require.NoError(t, err)
	assert.Equal(t, sample().ToMap(), p.Map())
	assert.Equal(t, sample().Keys(), p.Keys())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON.Encode(&buf, sample()))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample().ToMap(), got)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("security.protocol")), bytes.Index(buf.Bytes(), []byte("bootstrap.servers")))
	assert.Equal(t, "application/json", JSON.ContentType())
}

func TestDotenv(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dotenv.Encode(&buf, sample()))

	got, err := godotenv.Unmarshal(buf.String())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"KAFKA_SECURITY_PROTOCOL":     "SSL",
		"KAFKA_BOOTSTRAP_SERVERS":     "a:1,b:2",
		"KAFKA_SSL_KEYSTORE_LOCATION": "/tmp/keystore-1.p12",
		"KAFKA_SSL_KEYSTORE_PASSWORD": "abc234",
	}, got)
}

func TestByName(t *testing.T) {
	for _, name := range []string{NameProperties, NameJSON, NameEnv} {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, c)
	}
	_, err := ByName("yaml")
	require.Error(t, err)
}
