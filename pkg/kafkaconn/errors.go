package kafkaconn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingConfiguration matches every *MissingConfigurationError.
	ErrMissingConfiguration = errors.New("kafkaconn: missing configuration")

	// ErrInvalidArgument matches every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("kafkaconn: invalid argument")
)

// MissingConfigurationError reports an absent KAFKA_URL or a malformed entry
// in it. The message always names the variable.
type MissingConfigurationError struct {
	Variable string
	Entry    string // offending entry; empty when the variable is absent
	Reason   string
}

func (e *MissingConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("kafkaconn: missing %s", e.Variable)
	}
	return fmt.Sprintf("kafkaconn: malformed entry %q in %s: %s", e.Entry, e.Variable, e.Reason)
}

func (e *MissingConfigurationError) Is(target error) bool { return target == ErrMissingConfiguration }

// InvalidArgumentError reports TLS material that is absent or unusable while
// the connection string asks for SSL.
type InvalidArgumentError struct {
	Variables []string
	Err       error // parse failure; nil when the variables are missing
}

func (e *InvalidArgumentError) Error() string {
	vars := strings.Join(e.Variables, ", ")
	if e.Err == nil {
		return fmt.Sprintf("kafkaconn: missing SSL environment variable(s): %s", vars)
	}
	return fmt.Sprintf("kafkaconn: invalid %s: %v", vars, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
