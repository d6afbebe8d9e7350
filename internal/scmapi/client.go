// Package scmapi implements a typed client for the SCM-Manager v2 REST API.
package scmapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-pipeline-utils/pkg/requests"
)

var log = logger.NewScoped("SCM-API")

// pullRequestContentType is the versioned media type SCM-Manager requires
// when creating a pull request.
const pullRequestContentType = "application/vnd.scmm-pullRequest+json;v=2"

// Client is used to talk with the SCM-Manager REST API.
type Client struct {
	BaseURL string
	Token   string
}

func (c *Client) rest() requests.Client {
	return requests.Client{
		BaseURL:     c.BaseURL,
		BearerToken: c.Token,
	}
}

// TestAuthentication calls the identity endpoint. A nil error implies the
// configured token is valid; the returned Me carries the display name and
// mail address for human-readable confirmation.
func (c *Client) TestAuthentication() (Me, error) {
	var me Me
	if err := requests.UnmarshalJSON(&me, c.rest().Get("/v2/me")); err != nil {
		return Me{}, err
	}
	return me, nil
}

// RepositoryExists looks up the repository and reports whether it exists.
// Only transport failures yield an error; a failing HTTP status means the
// repository is missing or inaccessible and reports false.
func (c *Client) RepositoryExists(namespace, name string) (bool, error) {
	resp := c.rest().Get(fmt.Sprintf("/v2/repositories/%s/%s", namespace, name))
	if resp.StatusCode == 0 {
		return false, fmt.Errorf("unable to look up repository %s/%s: %s",
			namespace, name, resp.Error)
	}
	return resp.Successful(), nil
}

// ListBranches fetches the branches of a repository. A repository without
// branches yields an empty list.
func (c *Client) ListBranches(namespace, name string) ([]Branch, error) {
	var branches branchesResponse
	resp := c.rest().Get(fmt.Sprintf("/v2/repositories/%s/%s/branches/", namespace, name))
	if err := requests.UnmarshalJSON(&branches, resp); err != nil {
		return nil, err
	}
	log.Debug().
		WithStringf("repository", "%s/%s", namespace, name).
		WithInt("count", len(branches.Embedded.Branches)).
		Message("Listed branches.")
	return branches.Embedded.Branches, nil
}

// CreatePullRequest creates a pull request on the repository and returns the
// created record, including the server-assigned identifier. The required
// fields source, target, and title are validated before any network call.
func (c *Client) CreatePullRequest(namespace, name string, pr PullRequest) (*PullRequest, error) {
	if err := validatePullRequest(pr); err != nil {
		return nil, err
	}

	body, err := json.Marshal(pr)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/v2/pull-requests/%s/%s", namespace, name)
	resp := c.rest().Do(http.MethodPost, path, body, pullRequestContentType)
	if !resp.Successful() {
		return nil, fmt.Errorf("unable to create pull request for %s/%s: %s",
			namespace, name, resp.Error)
	}

	created := pr
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &created); err != nil {
			return nil, fmt.Errorf("unable to parse created pull request for %s/%s: %w",
				namespace, name, err)
		}
	}
	log.Debug().
		WithStringf("repository", "%s/%s", namespace, name).
		WithString("id", created.ID).
		Message("Created pull request.")
	return &created, nil
}

func validatePullRequest(pr PullRequest) error {
	switch {
	case pr.Source == "":
		return fmt.Errorf("missing required pull request field: source")
	case pr.Target == "":
		return fmt.Errorf("missing required pull request field: target")
	case pr.Title == "":
		return fmt.Errorf("missing required pull request field: title")
	}
	return nil
}
