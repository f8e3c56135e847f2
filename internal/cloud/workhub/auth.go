package workhub

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sa67/workhub-cli/internal/auth"
)

const (
	signInPath = "/signin"
)

// SignInRequest is the sign in payload
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	TokenType string     `json:"token_type"`
	Token     string     `json:"token"`
	UserID    flexibleID `json:"id"`
	ResumeID  flexibleID `json:"resume_id"`
}

// flexibleID accepts an id sent either as a JSON number or a JSON string
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexibleID(n.String())
	return nil
}

// SignIn authenticates the credentials and, on success, saves the resulting
// session (including its resume id) with the client's auth service
//
// The client's own Authorization header is not refreshed by this call,
// a new client must be created to make requests with the new session
func (c *client) SignIn(creds SignInRequest) (auth.Session, Response, error) {
	res, err := c.doJSON(http.MethodPost, signInPath, creds)
	if err != nil {
		return auth.Session{}, res, err
	}

	var payload signInResponse
	if err := res.Decode(&payload); err != nil {
		return auth.Session{}, res, err
	}

	session := auth.Session{
		TokenType: payload.TokenType,
		Token:     payload.Token,
		UserID:    string(payload.UserID),
		ResumeID:  string(payload.ResumeID),
	}

	c.authService.SetSession(session)
	if err := c.authService.Save(); err != nil {
		return session, res, err
	}
	return session, res, nil
}
