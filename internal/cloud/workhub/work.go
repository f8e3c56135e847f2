package workhub

import (
	"net/http"

	"github.com/sa67/workhub-cli/internal/utils/api"
)

const (
	worksPath       = "/works"
	workPathPattern = "/work/%s"

	postworksPath       = "/postworks"
	postworkPathPattern = "/postwork/%s"
)

func (c *client) CreateWork(work Record) (Response, error) {
	return c.doJSON(http.MethodPost, worksPath, work)
}

func (c *client) GetWork() (Response, error) {
	return c.do(http.MethodGet, worksPath, api.RequestOptions{})
}

func (c *client) GetWorkByID(id string) (Response, error) {
	return c.do(http.MethodGet, resourcePath(workPathPattern, id), api.RequestOptions{})
}

func (c *client) UpdateWorkByID(id string, work Record) (Response, error) {
	return c.doJSON(http.MethodPut, resourcePath(workPathPattern, id), work)
}

func (c *client) DeleteWorkByID(id string) (Response, error) {
	return c.do(http.MethodDelete, resourcePath(workPathPattern, id), api.RequestOptions{})
}

func (c *client) GetPostwork() (Response, error) {
	return c.do(http.MethodGet, postworksPath, api.RequestOptions{})
}

func (c *client) GetPostworkByID(id string) (Response, error) {
	return c.do(http.MethodGet, resourcePath(postworkPathPattern, id), api.RequestOptions{})
}

func (c *client) DeletePostworkByID(id string) (Response, error) {
	return c.do(http.MethodDelete, resourcePath(postworkPathPattern, id), api.RequestOptions{})
}
