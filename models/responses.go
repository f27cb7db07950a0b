package models

// SessionNotice is written together with the redirect that follows a
// successful login.
type SessionNotice struct {
	Notice string `json:"notice"`
	User   User   `json:"user"`
}

// LoginForm describes the fields expected by POST /sessions. It is returned
// by GET /sessions/new and re-presented after a failed login attempt.
type LoginForm struct {
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
	Error  string   `json:"error,omitempty"`
}

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
