package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAddFlags(t *testing.T, typ, control, module, args, position string) {
	t.Helper()
	prevType, prevControl, prevModule := addType, addControl, addModule
	prevArgs, prevPosition := addArgs, addPosition
	addType, addControl, addModule = typ, control, module
	addArgs, addPosition = args, position
	t.Cleanup(func() {
		addType, addControl, addModule = prevType, prevControl, prevModule
		addArgs, addPosition = prevArgs, prevPosition
	})
}

func TestAddCommand_Metadata(t *testing.T) {
	for _, flag := range []string{"type", "control", "module", "args", "position"} {
		if addCmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag should be defined", flag)
		}
	}
}

func TestRunAdd_End(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so\n#comment\n",
	})
	setAddFlags(t, "session", "optional", "pam_motd.so", "", "end")

	var buf bytes.Buffer
	require.NoError(t, runAddWithWriter(&buf, "sshd"))
	assert.Contains(t, buf.String(), "Rule added to sshd")

	data, err := os.ReadFile(filepath.Join(dir, "sshd"))
	require.NoError(t, err)
	assert.Equal(t,
		"auth\trequired\tpam_unix.so\n#comment\nsession\toptional\tpam_motd.so\n",
		string(data))
}

func TestRunAdd_StartWithArgs(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so\n#comment\n",
	})
	setAddFlags(t, "session", "optional", "pam_mkhomedir.so", "umask=0022", "start")

	var buf bytes.Buffer
	require.NoError(t, runAddWithWriter(&buf, "sshd"))

	data, err := os.ReadFile(filepath.Join(dir, "sshd"))
	require.NoError(t, err)
	assert.Equal(t,
		"session\toptional\tpam_mkhomedir.so\tumask=0022\nauth\trequired\tpam_unix.so\n#comment\n",
		string(data))
}

func TestRunAdd_ServiceNotFound(t *testing.T) {
	dir := setupTestDir(t, nil)
	setAddFlags(t, "auth", "required", "pam_unix.so", "", "end")

	var buf bytes.Buffer
	require.NoError(t, runAddWithWriter(&buf, "absent"))
	assert.Contains(t, buf.String(), "Service absent not found")

	// Add never creates a service file.
	_, err := os.Stat(filepath.Join(dir, "absent"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunAdd_InvalidPosition(t *testing.T) {
	setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so\n",
	})
	setAddFlags(t, "auth", "required", "pam_deny.so", "", "middle")

	var buf bytes.Buffer
	err := runAddWithWriter(&buf, "sshd")
	require.Error(t, err)
}
