package api

import "github.com/averyhb/balancechat/internal"

// ChatRequest is the completion call payload: the new message plus the
// full session history and the selected model identifier.
type ChatRequest struct {
	Message string             `json:"message"`
	History []internal.Message `json:"history"`
	Model   string             `json:"model"`
}

// ChatResponse carries the assistant's reply text.
type ChatResponse struct {
	Response string `json:"response"`
}

// AuthRequest is the login/register payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token issued on login or registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the backend's error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Reminder mirrors the backend reminder record.
type Reminder struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// ReminderCreate is the payload for creating a reminder.
type ReminderCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// ModelsResponse lists the models the backend can route to.
type ModelsResponse struct {
	AvailableModels []string `json:"available_models"`
	DefaultModel    string   `json:"default_model"`
}

// Preferences holds the user's assistant settings.
type Preferences struct {
	CommunicationStyle string                 `json:"communication_style"`
	StudyLevel         string                 `json:"study_level"`
	Preferences        map[string]interface{} `json:"preferences"`
}

// Document is an uploaded study material reference.
type Document struct {
	ID         int    `json:"id"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	UploadedAt string `json:"uploaded_at"`
}

// DocumentUpload is the payload for uploading a document.
type DocumentUpload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

// FeedbackRequest rates an assistant message: 1 helpful, -1 not helpful.
type FeedbackRequest struct {
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}
