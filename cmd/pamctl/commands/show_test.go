package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pamctl/pamctl/internal/pamd"
)

func TestShowCommand_Metadata(t *testing.T) {
	if showCmd.Use != "show <service>" {
		t.Errorf("Use = %q, want %q", showCmd.Use, "show <service>")
	}
	if showCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
	if showCmd.Flags().Lookup("output") == nil {
		t.Error("--output flag should be defined")
	}
}

func TestRunShow_Tabular(t *testing.T) {
	setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so\n#comment\nsession optional pam_motd.so motd=/run/motd\n",
	})

	var buf bytes.Buffer
	require.NoError(t, runShowWithWriter(&buf, "sshd"))

	out := buf.String()
	assert.Contains(t, out, "Rules for sshd")
	assert.Contains(t, out, "pam_unix.so")
	assert.Contains(t, out, "pam_motd.so")
	assert.Contains(t, out, "motd=/run/motd")
	assert.NotContains(t, out, "#comment")
}

func TestRunShow_ServiceNotFound(t *testing.T) {
	setupTestDir(t, nil)

	var buf bytes.Buffer
	// Expected outcome: message, nil error.
	require.NoError(t, runShowWithWriter(&buf, "absent"))
	assert.Contains(t, buf.String(), "Service absent not found")
}

func TestRunShow_NoRules(t *testing.T) {
	setupTestDir(t, map[string]string{
		"other": "# only comments here\n",
	})

	var buf bytes.Buffer
	require.NoError(t, runShowWithWriter(&buf, "other"))
	assert.Contains(t, buf.String(), "(no rules)")
}

func TestRunShow_JSON(t *testing.T) {
	setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so\n",
	})

	prev := showJSON
	showJSON = true
	t.Cleanup(func() { showJSON = prev })

	var buf bytes.Buffer
	require.NoError(t, runShowWithWriter(&buf, "sshd"))

	var rules []pamd.Rule
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rules))
	require.Len(t, rules, 1)
	assert.Equal(t, pamd.Rule{Type: "auth", Control: "required", Module: "pam_unix.so"}, rules[0])
}

func TestRunShow_YAML(t *testing.T) {
	setupTestDir(t, map[string]string{
		"sshd": "auth\trequired\tpam_unix.so nullok\n",
	})

	prevJSON, prevOutput := showJSON, showOutput
	showJSON = false
	showOutput = "yaml"
	t.Cleanup(func() {
		showJSON = prevJSON
		showOutput = prevOutput
	})

	var buf bytes.Buffer
	require.NoError(t, runShowWithWriter(&buf, "sshd"))

	var rules []pamd.Rule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rules))
	require.Len(t, rules, 1)
	assert.Equal(t, "nullok", rules[0].Args)
}
