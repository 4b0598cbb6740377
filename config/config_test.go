package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, dataDir, content string) {
	err := ioutil.WriteFile(filepath.Join(dataDir, "kmd-client.yaml"), []byte(content), 0600)
	assert.NoError(t, err)
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	dataDir, err := ioutil.TempDir("", "kmd-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dataDir)

	config, err := Load(dataDir)
	assert.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:7833", config.Address)
	assert.Equal(t, "", config.Token)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dataDir, err := ioutil.TempDir("", "kmd-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dataDir)
	writeConfig(t, dataDir, "address: http://127.0.0.1:9000\ntoken: filetoken\n")

	config, err := Load(dataDir)
	assert.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", config.Address)
	assert.Equal(t, "filetoken", config.Token)
}

func TestLoadFailsOnMalformedConfigFile(t *testing.T) {
	dataDir, err := ioutil.TempDir("", "kmd-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dataDir)
	writeConfig(t, dataDir, "address: [unclosed\n")

	_, err = Load(dataDir)
	assert.Error(t, err)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	dataDir, err := ioutil.TempDir("", "kmd-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dataDir)
	writeConfig(t, dataDir, "token: filetoken\n")

	err = os.Setenv("KMD_TOKEN", "envtoken")
	assert.NoError(t, err)
	defer os.Unsetenv("KMD_TOKEN")

	config, err := Load(dataDir)
	assert.NoError(t, err)
	assert.Equal(t, "envtoken", config.Token)
}

func TestChangedFlagsOverrideConfigFile(t *testing.T) {
	dataDir, err := ioutil.TempDir("", "kmd-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dataDir)
	writeConfig(t, dataDir, "address: http://127.0.0.1:9000\ntoken: filetoken\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("address", "", "")
	flags.String("token", "", "")
	err = flags.Set("token", "flagtoken")
	assert.NoError(t, err)

	config, err := LoadWithFlags(dataDir, flags)
	assert.NoError(t, err)
	// the changed flag wins, the untouched one leaves the file value alone
	assert.Equal(t, "flagtoken", config.Token)
	assert.Equal(t, "http://127.0.0.1:9000", config.Address)
}
