package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"ui_verification/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatYAML = `
name: legacy-login-message
steps:
  - type: navigate
    url: ${VERIFY_TEST_BASE_URL}
  - type: fill
    target: {by: label, value: Email}
    text: test2@test.com
  - type: click
    target: {by: role, role: button, value: Login, exact: true}
  - type: click
    target: {by: role, role: button, value: "^Message$", regexp: true, first: true}
  - type: set_files
    target: {by: role, role: button, value: Image}
    files: [jules-scratch/verification/red.png]
  - type: expect_visible
    target: {by: text, value: Here is an image!}
  - type: screenshot
    path: out/verification.png
    full_page: true
`

func TestLoad(t *testing.T) {
	t.Setenv("VERIFY_TEST_BASE_URL", "http://127.0.0.1:9090/")
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chatYAML), 0644))

	scenario, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "legacy-login-message", scenario.Name)
	require.Len(t, scenario.Steps, 7)
	assert.Equal(t, "http://127.0.0.1:9090/", scenario.Steps[0].URL)
	assert.Equal(t, &entities.Target{By: entities.ByRole, Role: "button", Value: "Login", Exact: true}, scenario.Steps[2].Target)
	assert.Equal(t, `role=button[/^Message$/].first`, scenario.Steps[3].Target.String())
	assert.Equal(t, []string{"jules-scratch/verification/red.png"}, scenario.Steps[4].Files)
	assert.Equal(t, "Here is an image!", scenario.Steps[5].Target.Value)
	assert.True(t, scenario.Steps[6].FullPage)
}

func TestParse_DefaultName(t *testing.T) {
	scenario, err := Parse([]byte("steps:\n  - type: navigate\n    url: http://x/\n"))
	require.NoError(t, err)
	assert.Equal(t, "custom", scenario.Name)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - type: click\n    selector: '#send'\n"))
	assert.ErrorIs(t, err, entities.ErrInvalidScenario)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, entities.ErrInvalidScenario)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_KeepsBareDollarLiterals(t *testing.T) {
	t.Setenv("word", "SHOULD-NOT-APPEAR")
	t.Setenv("VERIFY_TEST_EMAIL", "test2@test.com")

	scenario, err := Parse([]byte(`
steps:
  - type: fill
    target: {by: label, value: Email}
    text: ${VERIFY_TEST_EMAIL}
  - type: fill
    target: {by: label, value: Password}
    text: "pa$word"
  - type: fill
    target: {by: placeholder, value: Add a caption...}
    text: "Costs $5"
  - type: click
    target: {by: role, role: button, value: "^(Login|Sign In)$", regexp: true}
  - type: fill
    target: {by: label, value: Note}
    text: "${not valid} and ${"
`))
	require.NoError(t, err)
	require.Len(t, scenario.Steps, 5)

	assert.Equal(t, "test2@test.com", scenario.Steps[0].Text)
	assert.Equal(t, "pa$word", scenario.Steps[1].Text)
	assert.Equal(t, "Costs $5", scenario.Steps[2].Text)
	assert.Equal(t, "^(Login|Sign In)$", scenario.Steps[3].Target.Value)
	assert.Equal(t, "${not valid} and ${", scenario.Steps[4].Text)
}
