package auth

// Service is an auth service
type Service interface {
	ClearSession()
	Save() error
	Session() Session
	SetSession(session Session)
}

// Session is the WorkHub session
type Session struct {
	TokenType string
	Token     string
	UserID    string
	ResumeID  string
}

// Authenticated returns true if the session holds a token
func (s Session) Authenticated() bool {
	return s.Token != ""
}
