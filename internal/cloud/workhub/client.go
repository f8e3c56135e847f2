package workhub

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/utils/api"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the base URL of a locally running WorkHub server
const DefaultBaseURL = "http://localhost:8000"

// Client is a WorkHub client
type Client interface {
	SignIn(creds SignInRequest) (auth.Session, Response, error)

	CreateUser(user User) (Response, error)
	GetUsers() (Response, error)
	GetUsersByID(id string) (Response, error)
	UpdateUsersByID(id string, user Record) (Response, error)
	DeleteUsersByID(id string) (Response, error)

	CreateWork(work Record) (Response, error)
	GetWork() (Response, error)
	GetWorkByID(id string) (Response, error)
	UpdateWorkByID(id string, work Record) (Response, error)
	DeleteWorkByID(id string) (Response, error)

	GetPostwork() (Response, error)
	GetPostworkByID(id string) (Response, error)
	DeletePostworkByID(id string) (Response, error)

	CreateResume(resume Record) (Response, error)
	GetResume() (Response, error)
	GetResumeByID(id string) (Response, error)
	SessionResume() (Response, error)
	UpdateResumeByID(id string, resume Record) (Response, error)
	DeleteResumeByID(id string) (Response, error)

	Status() error
}

// Config is the WorkHub client configuration
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewClient creates a new WorkHub client that sends no credentials
func NewClient(config Config) Client {
	return newClient(config, noopAuth{})
}

// NewAuthClient creates a new WorkHub client that authorizes every request
// with the session held by authService at the time of this call
func NewAuthClient(config Config, authService auth.Service) Client {
	return newClient(config, authService)
}

func newClient(config Config, authService auth.Service) *client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	var authorization string
	if session := authService.Session(); session.Authenticated() {
		authorization = api.AuthorizationValue(session.TokenType, session.Token)
	}

	return &client{
		baseURL:       baseURL,
		authorization: authorization,
		authService:   authService,
		httpClient:    httpClient,
		logger:        config.Logger,
	}
}

type client struct {
	baseURL       string
	authorization string
	authService   auth.Service
	httpClient    *http.Client
	logger        zerolog.Logger
}

// resourcePath fills pattern with id escaped as a single path segment
func resourcePath(pattern, id string) string {
	return fmt.Sprintf(pattern, url.PathEscape(id))
}

func (c *client) doJSON(method, path string, payload interface{}) (Response, error) {
	options, err := api.JSONRequestOptions(payload)
	if err != nil {
		return Response{}, err
	}
	return c.do(method, path, options)
}

func (c *client) do(method, path string, options api.RequestOptions) (Response, error) {
	url := c.baseURL + path

	req, err := http.NewRequest(method, url, options.Body)
	if err != nil {
		return Response{}, TransportError{method, url, err}
	}

	for name, values := range options.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set(api.HeaderContentType, api.MediaTypeJSON)
	if c.authorization != "" {
		req.Header.Set(api.HeaderAuthorization, c.authorization)
	}

	logger := c.logger.With().
		Str("request_id", uuid.New().String()).
		Str("method", method).
		Str("path", path).
		Logger()

	start := time.Now()

	res, resErr := c.httpClient.Do(req)
	if resErr != nil {
		logger.Error().Err(resErr).Msg("request failed")
		return Response{}, TransportError{method, url, resErr}
	}
	defer res.Body.Close()

	payload, readErr := ioutil.ReadAll(res.Body)
	if readErr != nil {
		logger.Error().Err(readErr).Int("status", res.StatusCode).Msg("failed to read response")
		return Response{}, TransportError{method, url, readErr}
	}

	response := Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       payload,
	}

	logger.Debug().
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	if !response.OK() {
		return response, parseResponseError(response)
	}
	return response, nil
}

type noopAuth struct{}

func (na noopAuth) ClearSession() {}

func (na noopAuth) Save() error { return nil }

func (na noopAuth) Session() auth.Session { return auth.Session{} }

func (na noopAuth) SetSession(session auth.Session) {}
