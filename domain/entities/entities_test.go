package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget_String(t *testing.T) {
	var missing *Target
	assert.Equal(t, "<no target>", missing.String())
	assert.Equal(t, `selector["#send"]`, (&Target{By: BySelector, Value: "#send"}).String())
	assert.Equal(t, `role=button`, (&Target{By: ByRole, Role: "button"}).String())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "navigate to http://x/", Action{Type: ActionNavigate, URL: "http://x/"}.String())
	assert.Equal(t, "screenshot to a.png", Action{Type: ActionScreenshot, Path: "a.png"}.String())
	assert.Equal(t, `click role=link["Users"]`, Action{Type: ActionClick, Target: RoleTarget("link", "Users")}.String())
	assert.Equal(t, "log in", Action{Type: ActionClick, Description: "log in"}.String())
}

func TestStepError(t *testing.T) {
	cause := errors.New("locator timeout")

	err := &StepError{Index: 2, Action: ActionClick, Kind: ErrElementNotFound, Err: cause}
	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "step 3 (click): element not found: locator timeout", err.Error())

	// kind already carried by the cause is not repeated
	wrapped := fmt.Errorf("%w: text[\"hi\"]", ErrVisibilityTimeout)
	err = &StepError{Index: 0, Action: ActionExpectVisible, Kind: ErrVisibilityTimeout, Err: wrapped}
	assert.Equal(t, `step 1 (expect_visible): visibility timeout: text["hi"]`, err.Error())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrFileNotFound, Classify(fmt.Errorf("%w: red.png", ErrFileNotFound)))
	assert.Equal(t, ErrVisibilityTimeout, Classify(fmt.Errorf("wrap: %w", ErrVisibilityTimeout)))
	assert.Nil(t, Classify(errors.New("other")))
}
