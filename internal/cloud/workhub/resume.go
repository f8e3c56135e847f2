package workhub

import (
	"net/http"

	"github.com/sa67/workhub-cli/internal/utils/api"
)

const (
	resumesPath       = "/resumes"
	resumePathPattern = resumesPath + "/%s"
)

func (c *client) CreateResume(resume Record) (Response, error) {
	return c.doJSON(http.MethodPost, resumesPath, resume)
}

func (c *client) GetResume() (Response, error) {
	return c.do(http.MethodGet, resumesPath, api.RequestOptions{})
}

// GetResumeByID gets the resume bound to the current session
//
// Deprecated: id is ignored, the resume id saved at sign in is always used.
// Use SessionResume instead, or GetResume to list every resume.
func (c *client) GetResumeByID(id string) (Response, error) {
	return c.SessionResume()
}

// SessionResume gets the resume whose id was saved at sign in
// It fails with ErrNoResumeID, without sending a request, if there is none
func (c *client) SessionResume() (Response, error) {
	resumeID := c.authService.Session().ResumeID
	if resumeID == "" {
		return Response{}, ErrNoResumeID
	}
	return c.do(http.MethodGet, resourcePath(resumePathPattern, resumeID), api.RequestOptions{})
}

func (c *client) UpdateResumeByID(id string, resume Record) (Response, error) {
	return c.doJSON(http.MethodPut, resourcePath(resumePathPattern, id), resume)
}

func (c *client) DeleteResumeByID(id string) (Response, error) {
	return c.do(http.MethodDelete, resourcePath(resumePathPattern, id), api.RequestOptions{})
}
