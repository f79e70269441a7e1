package flows

import (
	"testing"

	"ui_verification/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatImageUpload(t *testing.T) {
	scenario := ChatImageUpload(ChatUploadParams{
		BaseURL:        "http://127.0.0.1:8080/",
		Email:          "test@test.com",
		Password:       "password",
		LoginButton:    "^(Login|Sign In)$",
		MessageButton:  "^(Message|Chat)$",
		ImagePath:      "jules-scratch/verification/red.png",
		Caption:        "Here is an image!",
		ScreenshotPath: "jules-scratch/verification/verification.png",
	})

	assert.Equal(t, ChatUploadName, scenario.Name)
	require.Len(t, scenario.Steps, 11)

	tests := []struct {
		index  int
		action entities.ActionType
		target string
	}{
		{1, entities.ActionFill, `label["Email"]`},
		{2, entities.ActionFill, `label["Password"]`},
		{3, entities.ActionClick, `role=button[/^(Login|Sign In)$/]`},
		{4, entities.ActionClick, `role=link["Users"]`},
		{5, entities.ActionClick, `role=button[/^(Message|Chat)$/].first`},
		{6, entities.ActionSetFiles, `role=button["Image"]`},
		{7, entities.ActionFill, `placeholder["Add a caption..."]`},
		{8, entities.ActionClick, `role=button["Send message"]`},
		{9, entities.ActionExpectVisible, `text["Here is an image!"].first`},
	}
	for _, tt := range tests {
		step := scenario.Steps[tt.index]
		assert.Equal(t, tt.action, step.Type, "step %d", tt.index)
		assert.Equal(t, tt.target, step.Target.String(), "step %d", tt.index)
	}

	assert.Equal(t, entities.ActionNavigate, scenario.Steps[0].Type)
	assert.Equal(t, "http://127.0.0.1:8080/", scenario.Steps[0].URL)
	assert.Equal(t, "test@test.com", scenario.Steps[1].Text)
	assert.Equal(t, []string{"jules-scratch/verification/red.png"}, scenario.Steps[6].Files)
	assert.Equal(t, "Here is an image!", scenario.Steps[7].Text)

	last := scenario.Steps[10]
	assert.Equal(t, entities.ActionScreenshot, last.Type)
	assert.True(t, last.FullPage)
	assert.Equal(t, []string{"jules-scratch/verification/verification.png"}, scenario.ScreenshotPaths())
}
