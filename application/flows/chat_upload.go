// Package flows holds the built-in scenarios.
package flows

import "ui_verification/domain/entities"

// ChatUploadName is the name of the built-in scenario
const ChatUploadName = "chat-image-upload"

// ChatUploadParams parameterizes the chat image upload flow
type ChatUploadParams struct {
	BaseURL        string
	Email          string
	Password       string
	LoginButton    string // pattern for the login button name
	MessageButton  string // pattern for the per-user message button name
	ImagePath      string
	Caption        string
	ScreenshotPath string
}

// ChatImageUpload - logs in, opens a chat with the first listed user, sends an image with a
// caption and captures the page once the caption shows up
func ChatImageUpload(p ChatUploadParams) *entities.Scenario {
	loginButton := entities.RoleTarget("button", p.LoginButton)
	loginButton.Regexp = true

	messageButton := entities.RoleTarget("button", p.MessageButton)
	messageButton.Regexp = true
	messageButton.First = true

	// the caption may render in more than one element (message bubble and preview)
	sentCaption := entities.TextTarget(p.Caption)
	sentCaption.First = true

	return &entities.Scenario{
		Name: ChatUploadName,
		Steps: []entities.Action{
			{Type: entities.ActionNavigate, URL: p.BaseURL, Description: "open the app"},
			{Type: entities.ActionFill, Target: entities.LabelTarget("Email"), Text: p.Email, Description: "fill email"},
			{Type: entities.ActionFill, Target: entities.LabelTarget("Password"), Text: p.Password, Description: "fill password"},
			{Type: entities.ActionClick, Target: loginButton, Description: "log in"},
			{Type: entities.ActionClick, Target: entities.RoleTarget("link", "Users"), Description: "go to users page"},
			{Type: entities.ActionClick, Target: messageButton, Description: "open chat with first user"},
			{Type: entities.ActionSetFiles, Target: entities.RoleTarget("button", "Image"), Files: []string{p.ImagePath}, Description: "upload image"},
			{Type: entities.ActionFill, Target: entities.PlaceholderTarget("Add a caption..."), Text: p.Caption, Description: "add caption"},
			{Type: entities.ActionClick, Target: entities.RoleTarget("button", "Send message"), Description: "send message"},
			{Type: entities.ActionExpectVisible, Target: sentCaption, Description: "wait for the message to appear"},
			{Type: entities.ActionScreenshot, Path: p.ScreenshotPath, FullPage: true, Description: "take screenshot"},
		},
	}
}
