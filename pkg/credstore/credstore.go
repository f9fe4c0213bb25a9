// Package credstore materializes PEM certificate material as PKCS12
// truststores and keystores on local disk.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// TypePKCS12 is the only store type written. JVM clients read it natively.
const TypePKCS12 = "PKCS12"

// Store describes one credential store file.
type Store struct {
	Type     string
	Location string // absolute path
	Password string
}

// Remove deletes the store file. Removing a missing file is not an error.
func (s Store) Remove() error {
	if s.Location == "" {
		return nil
	}
	if err := os.Remove(s.Location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("credstore: remove %s: %w", s.Location, err)
	}
	return nil
}

// Writer creates store files. The zero value writes to os.TempDir with
// DefaultPasswordLength passwords.
type Writer struct {
	Dir            string
	PasswordLength int
	// SetID, when set, is embedded in file names so a truststore and
	// keystore written together can be matched on disk.
	SetID string
}

func (w Writer) pattern(kind string) string {
	if w.SetID == "" {
		return kind + "-*.p12"
	}
	return kind + "-" + w.SetID + "-*.p12"
}

// WriteTruststore writes every certificate in certsPEM into a new truststore.
func (w Writer) WriteTruststore(certsPEM []byte) (Store, error) {
	certs, err := ParseCertificates(certsPEM)
	if err != nil {
		return Store{}, &PEMError{Field: FieldTrustedCert, Err: err}
	}
	pw, err := NewPassword(w.PasswordLength)
	if err != nil {
		return Store{}, err
	}
	data, err := pkcs12.Modern.EncodeTrustStore(certs, pw)
	if err != nil {
		return Store{}, fmt.Errorf("credstore: encode truststore: %w", err)
	}
	loc, err := w.writeFile(w.pattern("truststore"), data)
	if err != nil {
		return Store{}, err
	}
	return Store{Type: TypePKCS12, Location: loc, Password: pw}, nil
}

// WriteKeystore writes the client certificate chain and its private key into
// a new keystore. The first certificate in certPEM must match the key.
func (w Writer) WriteKeystore(certPEM, keyPEM []byte) (Store, error) {
	certs, err := ParseCertificates(certPEM)
	if err != nil {
		return Store{}, &PEMError{Field: FieldClientCert, Err: err}
	}
	key, err := ParsePrivateKey(keyPEM)
	if err != nil {
		return Store{}, &PEMError{Field: FieldClientKey, Err: err}
	}
	if err := matchKey(certs[0], key); err != nil {
		return Store{}, &PEMError{Field: FieldClientKey, Err: err}
	}
	pw, err := NewPassword(w.PasswordLength)
	if err != nil {
		return Store{}, err
	}
	data, err := pkcs12.Modern.Encode(key, certs[0], certs[1:], pw)
	if err != nil {
		return Store{}, fmt.Errorf("credstore: encode keystore: %w", err)
	}
	loc, err := w.writeFile(w.pattern("keystore"), data)
	if err != nil {
		return Store{}, err
	}
	return Store{Type: TypePKCS12, Location: loc, Password: pw}, nil
}

func (w Writer) writeFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(w.Dir, pattern)
	if err != nil {
		return "", fmt.Errorf("credstore: create %s: %w", pattern, err)
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("credstore: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("credstore: close %s: %w", name, err)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("credstore: resolve %s: %w", name, err)
	}
	return abs, nil
}
