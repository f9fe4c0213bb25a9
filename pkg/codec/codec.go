package codec

import "fmt"

// Names accepted by ByName.
const (
	NameProperties = "properties"
	NameJSON       = "json"
	NameEnv        = "env"
)

var byName = map[string]Codec{
	NameProperties: Properties,
	NameJSON:       JSON,
	NameEnv:        Dotenv,
}

func ByName(name string) (Codec, error) {
	c, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q", name)
	}
	return c, nil
}
