package kafkaconn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// SecurityMode is the transport selected by the connection string scheme.
type SecurityMode string

const (
	Plaintext SecurityMode = "PLAINTEXT"
	SSL       SecurityMode = "SSL"
)

// URL schemes accepted in KAFKA_URL.
const (
	SchemePlaintext = "kafka"
	SchemeSSL       = "kafka+ssl"
)

// BrokerEndpoint is one host:port pair from KAFKA_URL.
type BrokerEndpoint struct {
	Host string
	Port int
}

func (e BrokerEndpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// ConnectionString is a parsed KAFKA_URL.
type ConnectionString struct {
	Endpoints []BrokerEndpoint
	Mode      SecurityMode
}

// BootstrapServers returns the endpoints as host:port strings, in order.
func (c ConnectionString) BootstrapServers() []string {
	out := make([]string, len(c.Endpoints))
	for i, e := range c.Endpoints {
		out[i] = e.String()
	}
	return out
}

// ParseConnectionString parses a comma-separated list of kafka:// or
// kafka+ssl:// URLs. Each entry is scheme://host:port with at most a trailing
// slash. The mode is SSL when any entry uses kafka+ssl; entries
// are not required to agree.
func ParseConnectionString(raw string) (ConnectionString, error) {
	if strings.TrimSpace(raw) == "" {
		return ConnectionString{}, &MissingConfigurationError{Variable: EnvURL}
	}

	var cs ConnectionString
	cs.Mode = Plaintext
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		ep, scheme, err := parseEntry(entry)
		if err != nil {
			return ConnectionString{}, &MissingConfigurationError{Variable: EnvURL, Entry: entry, Reason: err.Error()}
		}
		if scheme == SchemeSSL {
			cs.Mode = SSL
		}
		cs.Endpoints = append(cs.Endpoints, ep)
	}
	return cs, nil
}

func parseEntry(entry string) (BrokerEndpoint, string, error) {
	if entry == "" {
		return BrokerEndpoint{}, "", fmt.Errorf("empty entry")
	}
	u, err := url.Parse(entry)
	if err != nil {
		return BrokerEndpoint{}, "", fmt.Errorf("not a URL")
	}
	switch u.Scheme {
	case SchemePlaintext, SchemeSSL:
	case "":
		return BrokerEndpoint{}, "", fmt.Errorf("missing scheme")
	default:
		return BrokerEndpoint{}, "", fmt.Errorf("unknown scheme %q", u.Scheme)
	}
	if u.Opaque != "" || u.User != nil || hasSuffixParts(u) {
		return BrokerEndpoint{}, "", fmt.Errorf("expected %s://host:port", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return BrokerEndpoint{}, "", fmt.Errorf("missing host")
	}
	p := u.Port()
	if p == "" {
		return BrokerEndpoint{}, "", fmt.Errorf("missing port")
	}
	port, err := strconv.Atoi(p)
	if err != nil || port <= 0 || port > 65535 {
		return BrokerEndpoint{}, "", fmt.Errorf("invalid port %q", p)
	}
	return BrokerEndpoint{Host: host, Port: port}, u.Scheme, nil
}

// hasSuffixParts reports anything after host:port other than a lone slash.
func hasSuffixParts(u *url.URL) bool {
	return (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.ForceQuery || u.Fragment != ""
}
