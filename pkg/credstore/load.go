package credstore

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// LoadTruststore reads the trusted certificates back out of a truststore.
func LoadTruststore(s Store) ([]*x509.Certificate, error) {
	data, err := readStore(s)
	if err != nil {
		return nil, err
	}
	certs, err := pkcs12.DecodeTrustStore(data, s.Password)
	if err != nil {
		return nil, fmt.Errorf("credstore: decode truststore %s: %w", s.Location, err)
	}
	return certs, nil
}

// LoadKeystore reads the client identity back out of a keystore.
func LoadKeystore(s Store) (tls.Certificate, error) {
	data, err := readStore(s)
	if err != nil {
		return tls.Certificate{}, err
	}
	key, leaf, chain, err := pkcs12.DecodeChain(data, s.Password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("credstore: decode keystore %s: %w", s.Location, err)
	}
	cert := tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}
	for _, c := range chain {
		cert.Certificate = append(cert.Certificate, c.Raw)
	}
	return cert, nil
}

func readStore(s Store) ([]byte, error) {
	if s.Type != TypePKCS12 {
		return nil, fmt.Errorf("credstore: unsupported store type %q", s.Type)
	}
	data, err := os.ReadFile(s.Location)
	if err != nil {
		return nil, fmt.Errorf("credstore: read %s: %w", s.Location, err)
	}
	return data, nil
}
