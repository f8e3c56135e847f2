package workhub

import (
	"net/http"
	"time"

	"github.com/sa67/workhub-cli/internal/utils/api"
)

const (
	signUpPath      = "/signup"
	usersPath       = "/users"
	userPathPattern = "/user/%s"
)

// User is a WorkHub user
type User struct {
	ID        uint       `json:"ID,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Age       uint8      `json:"age,omitempty"`
	Password  string     `json:"password,omitempty"`
	BirthDay  *time.Time `json:"birthday,omitempty"`
	GenderID  uint       `json:"gender_id,omitempty"`
	Address   string     `json:"address,omitempty"`
	Category  string     `json:"category,omitempty"`
	Wages     uint       `json:"wages,omitempty"`
	Contact   string     `json:"contact,omitempty"`
	Profile   string     `json:"profile,omitempty"`
	ResumeID  uint       `json:"resume_id,omitempty"`
}

// SignUpResult is the body of a successful sign up
type SignUpResult struct {
	Message  string `json:"message"`
	ResumeID uint   `json:"resume_id"`
}

// CreateUser signs up a new user, the server creates an empty resume along with it
func (c *client) CreateUser(user User) (Response, error) {
	return c.doJSON(http.MethodPost, signUpPath, user)
}

func (c *client) GetUsers() (Response, error) {
	return c.do(http.MethodGet, usersPath, api.RequestOptions{})
}

func (c *client) GetUsersByID(id string) (Response, error) {
	return c.do(http.MethodGet, resourcePath(userPathPattern, id), api.RequestOptions{})
}

func (c *client) UpdateUsersByID(id string, user Record) (Response, error) {
	return c.doJSON(http.MethodPut, resourcePath(userPathPattern, id), user)
}

func (c *client) DeleteUsersByID(id string) (Response, error) {
	return c.do(http.MethodDelete, resourcePath(userPathPattern, id), api.RequestOptions{})
}
