package envsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookup(t *testing.T) {
	src := Map{"KAFKA_URL": "kafka://a:1", "EMPTY": ""}

	v, ok := src.Lookup("KAFKA_URL")
	assert.True(t, ok)
	assert.Equal(t, "kafka://a:1", v)

	_, ok = src.Lookup("MISSING")
	assert.False(t, ok)

	assert.Equal(t, "", Get(src, "EMPTY"))
	assert.Equal(t, "", Get(nil, "KAFKA_URL"))
}

func TestGetTreatsBlankAsAbsent(t *testing.T) {
	src := Map{"BLANK": "  \n"}
	assert.Equal(t, "", Get(src, "BLANK"))
}

func TestEnv(t *testing.T) {
	t.Setenv("KAFKACONN_TEST_VAR", "value")
	assert.Equal(t, "value", Get(Env(), "KAFKACONN_TEST_VAR"))
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	src := Chain(
		Map{"A": "", "B": "first"},
		nil,
		Map{"A": "second", "B": "ignored", "C": "third"},
	)

	assert.Equal(t, "second", Get(src, "A"))
	assert.Equal(t, "first", Get(src, "B"))
	assert.Equal(t, "third", Get(src, "C"))

	_, ok := src.Lookup("D")
	assert.False(t, ok)
}

func TestChainSkipsBlankValues(t *testing.T) {
	src := Chain(
		Map{"KAFKA_URL": "  \t"},
		Map{"KAFKA_URL": "kafka://a:1"},
	)

	v, ok := src.Lookup("KAFKA_URL")
	assert.True(t, ok)
	assert.Equal(t, "kafka://a:1", v)
	assert.Equal(t, "kafka://a:1", Get(src, "KAFKA_URL"))
}

func TestDotenv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("KAFKA_URL=kafka://a:1\nOTHER=x\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("KAFKA_URL=kafka://b:2\n"), 0o600))

	src, err := Dotenv(first, second)
	require.NoError(t, err)
	assert.Equal(t, "kafka://b:2", Get(src, "KAFKA_URL"))
	assert.Equal(t, "x", Get(src, "OTHER"))
}

func TestDotenvMissingFile(t *testing.T) {
	_, err := Dotenv(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

func TestTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kafka.toml")
	body := `
KAFKA_URL = "kafka+ssl://a:1,kafka+ssl://b:2"
KAFKA_TRUSTED_CERT = """
-----BEGIN CERTIFICATE-----
abc
-----END CERTIFICATE-----
"""
PORT = 9092
DEBUG = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	src, err := TOMLFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kafka+ssl://a:1,kafka+ssl://b:2", Get(src, "KAFKA_URL"))
	assert.Contains(t, Get(src, "KAFKA_TRUSTED_CERT"), "BEGIN CERTIFICATE")
	assert.Equal(t, "9092", Get(src, "PORT"))
	assert.Equal(t, "true", Get(src, "DEBUG"))
}

func TestTOMLFileRejectsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kafka.toml")
	require.NoError(t, os.WriteFile(path, []byte("[kafka]\nurl = \"x\"\n"), 0o600))

	_, err := TOMLFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a scalar")
}
