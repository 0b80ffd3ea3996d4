package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commands := settingsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
}

func TestSettingsShowCmd_DisplaysDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Student")
	assert.Contains(t, buf.String(), "Indigo (default)")
	assert.Contains(t, buf.String(), "Detailed (full explanations)")
}

func TestSettingsSetCmd_UpdatesProvidedFields(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "--name", "Ada", "--theme", "rose"})
	defer func() {
		rootCmd.SetArgs(nil)
		settingsSetName = ""
		settingsSetTheme = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Settings updated.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "Ada", settings.UserName)
	assert.Equal(t, "rose", settings.ThemeColor.String())
	assert.Equal(t, "detailed", settings.DetailLevel.String(), "untouched field keeps its value")
}

func TestSettingsSetCmd_RejectsInvalidTheme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "--theme", "plaid"})
	defer func() {
		rootCmd.SetArgs(nil)
		settingsSetTheme = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid setting value")
}

func TestSettingsSetCmd_NoFlagsIsNoop(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Nothing to change.")
}
