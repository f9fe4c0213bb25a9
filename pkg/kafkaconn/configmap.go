package kafkaconn

import (
	"bytes"
	"encoding/json"

	"github.com/magiconair/properties"
)

// Client configuration keys, as named by the Kafka client configuration docs.
const (
	SecurityProtocolConfig      = "security.protocol"
	BootstrapServersConfig      = "bootstrap.servers"
	SSLTruststoreTypeConfig     = "ssl.truststore.type"
	SSLTruststoreLocationConfig = "ssl.truststore.location"
	SSLTruststorePasswordConfig = "ssl.truststore.password"
	SSLKeystoreTypeConfig       = "ssl.keystore.type"
	SSLKeystoreLocationConfig   = "ssl.keystore.location"
	SSLKeystorePasswordConfig   = "ssl.keystore.password"
)

type entry struct {
	key   string
	value string
}

// ConfigMap is an insertion-ordered set of client configuration keys.
// The zero value is empty and ready to use.
type ConfigMap struct {
	entries []entry
}

// Set stores value under key, keeping the original position on overwrite.
func (m *ConfigMap) Set(key, value string) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].value = value
			return
		}
	}
	m.entries = append(m.entries, entry{key: key, value: value})
}

func (m ConfigMap) Get(key string) (string, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

func (m ConfigMap) Len() int { return len(m.entries) }

func (m ConfigMap) Keys() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (m ConfigMap) Range(fn func(key, value string) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// ToMap copies the entries into an unordered map.
func (m ConfigMap) ToMap() map[string]string {
	out := make(map[string]string, len(m.entries))
	for _, e := range m.entries {
		out[e.key] = e.value
	}
	return out
}

// Properties returns the flat properties view. Expansion of ${...} is
// disabled so generated values are kept verbatim.
func (m ConfigMap) Properties() *properties.Properties {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, e := range m.entries {
		// Set only fails on circular expansion, which is disabled.
		_, _, _ = p.Set(e.key, e.value)
	}
	return p
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m ConfigMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ConfigMapFromProperties rebuilds a ConfigMap from a properties view,
// keeping its key order.
func ConfigMapFromProperties(p *properties.Properties) ConfigMap {
	var m ConfigMap
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		m.Set(k, v)
	}
	return m
}
