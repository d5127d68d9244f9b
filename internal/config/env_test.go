package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	t.Setenv("KEYSTORE_FILE_PATH", "/tmp/keyring.kst")

	require.NoError(t, Init())
	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "/tmp/keyring.kst", GetKeystoreFilePath())
	assert.Equal(t, "ethereum", GetNetwork())
	assert.Equal(t, int64(1), GetChainID())
	assert.Equal(t, "info", GetLogLevel())
	assert.False(t, GetLogPretty())
	assert.False(t, GetRequireOriginPermission())
}

func TestInitOverrides(t *testing.T) {
	t.Setenv("KEYSTORE_FILE_PATH", "/tmp/keyring.kst")
	t.Setenv("PORT", "9090")
	t.Setenv("CHAIN_ID", "11155111")
	t.Setenv("REQUIRE_ORIGIN_PERMISSION", "true")

	require.NoError(t, Init())
	assert.Equal(t, "9090", GetPort())
	assert.Equal(t, int64(11155111), GetChainID())
	assert.True(t, GetRequireOriginPermission())
}

func TestInitValidation(t *testing.T) {
	t.Setenv("KEYSTORE_FILE_PATH", "")
	assert.Error(t, Init(), "keystore path is required")

	t.Setenv("KEYSTORE_FILE_PATH", "/tmp/keyring.kst")
	t.Setenv("CHAIN_ID", "0")
	assert.Error(t, Init())
}

func TestPasswordCopies(t *testing.T) {
	SetPassword([]byte("secret"))

	first, err := GetKeystorePasswordBytes()
	require.NoError(t, err)
	clear(first)

	second, err := GetKeystorePasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), second)
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, SetupLogger("debug", true))
	assert.NoError(t, SetupLogger("info", false))
	assert.Error(t, SetupLogger("loud", false))
}
