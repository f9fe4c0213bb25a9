package kafkaconn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectionString(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		mode    SecurityMode
		servers []string
	}{
		{"plaintext", "kafka://1.1.1.1:1,kafka://2.2.2.2:2,kafka://3.3.3.3:3", Plaintext, []string{"1.1.1.1:1", "2.2.2.2:2", "3.3.3.3:3"}},
		{"ssl", "kafka+ssl://1.1.1.1:1,kafka+ssl://2.2.2.2:2", SSL, []string{"1.1.1.1:1", "2.2.2.2:2"}},
		{"single", "kafka://broker.internal:9092", Plaintext, []string{"broker.internal:9092"}},
		{"whitespace", " kafka://a:1 , kafka://b:2 ", Plaintext, []string{"a:1", "b:2"}},
		{"ipv6", "kafka+ssl://[::1]:9096", SSL, []string{"[::1]:9096"}},
		{"mixed schemes select ssl", "kafka://a:1,kafka+ssl://b:2", SSL, []string{"a:1", "b:2"}},
		{"trailing slash", "kafka://a:1/", Plaintext, []string{"a:1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := ParseConnectionString(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.mode, cs.Mode)
			assert.Equal(t, tc.servers, cs.BootstrapServers())
		})
	}
}

func TestParseConnectionStringErrors(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		reason string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"no scheme", "1.1.1.1:1", ""},
		{"unknown scheme", "http://a:1", "unknown scheme"},
		{"missing port", "kafka://a", "missing port"},
		{"zero port", "kafka://a:0", "invalid port"},
		{"large port", "kafka://a:70000", "invalid port"},
		{"missing host", "kafka://:9092", "missing host"},
		{"empty entry", "kafka://a:1,,kafka://b:2", "empty entry"},
		{"userinfo", "kafka://user@a:1", "expected kafka://host:port"},
		{"path", "kafka://a:1/topic", "expected kafka://host:port"},
		{"query", "kafka+ssl://a:1?x=y", "expected kafka+ssl://host:port"},
		{"path and query", "kafka://a:1/topic?x=y", "expected kafka://host:port"},
		{"fragment", "kafka://a:1#f", "expected kafka://host:port"},
		{"empty query", "kafka://a:1?", "expected kafka://host:port"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConnectionString(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingConfiguration))
			assert.Contains(t, err.Error(), "KAFKA_URL")
			if tc.reason != "" {
				assert.Contains(t, err.Error(), tc.reason)
			}

			var mce *MissingConfigurationError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, EnvURL, mce.Variable)
		})
	}
}

func TestBrokerEndpointString(t *testing.T) {
	assert.Equal(t, "h:9092", BrokerEndpoint{Host: "h", Port: 9092}.String())
	assert.Equal(t, "[fe80::1]:1", BrokerEndpoint{Host: "fe80::1", Port: 1}.String())
}
