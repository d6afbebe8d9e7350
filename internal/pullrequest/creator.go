// Package pullrequest orchestrates creating a pull request on SCM-Manager on
// behalf of a finished build.
package pullrequest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/scmapi"
)

const defaultTargetBranch = "main"

var log = logger.NewScoped("PR-CREATOR")

// Input holds the data received from the build pipeline.
type Input struct {
	URL                string   `json:"url" example:"https://scm.local/scm/api"`
	Token              string   `json:"token" example:"sample token"`
	Namespace          string   `json:"namespace" example:"build"`
	Repository         string   `json:"repository" example:"my-app"`
	Source             string   `json:"source" example:"feature/login"`
	Target             string   `json:"target" example:"main"`
	Title              string   `json:"title" example:""`
	Description        string   `json:"description" example:""`
	Reviewers          []string `json:"reviewers" example:"alice,bob"`
	Labels             []string `json:"labels"`
	DeleteSourceBranch bool     `json:"deleteSourceBranch" example:"false"`
	JobName            string   `json:"jobName" example:"my-app-pipeline"`
	BuildNumber        string   `json:"buildNumber" example:"42"`
}

// Result is the output returned to the pipeline after a successful creation,
// for downstream steps to consume.
type Result struct {
	ID  string `json:"id" example:"1"`
	URL string `json:"url" example:"https://scm.local/scm/repo/build/my-app/pull-request/1"`
}

// Creator is an interface for creating pull requests on a remote SCM server.
//
// All of the functions will write a problem to the provided gin.Context when
// an error occurs.
type Creator interface {
	// CreateWritesProblem validates the input, checks credentials and
	// repository existence, and creates the pull request.
	CreateWritesProblem(data Input) (Result, bool)
}

type scmCreator struct {
	c   *gin.Context
	scm *scmapi.Client
}

// NewCreator creates a Creator talking to the given SCM-Manager client.
func NewCreator(c *gin.Context, client *scmapi.Client) Creator {
	return &scmCreator{
		c:   c,
		scm: client,
	}
}

func (cr *scmCreator) CreateWritesProblem(data Input) (Result, bool) {
	if !cr.validateWritesProblem(data) {
		return Result{}, false
	}

	me, err := cr.scm.TestAuthentication()
	if err != nil {
		ginutil.WriteAPIClientReadError(cr.c, err,
			fmt.Sprintf("Authentication against %q failed. "+
				"Could be caused by an invalid or expired token.", data.URL))
		return Result{}, false
	}
	log.Info().
		WithString("displayName", me.DisplayName).
		WithString("mail", me.Mail).
		Message("Authenticated against SCM-Manager.")

	exists, err := cr.scm.RepositoryExists(data.Namespace, data.Repository)
	if err != nil {
		ginutil.WriteAPIClientReadError(cr.c, err,
			fmt.Sprintf("Unable to look up repository %s/%s.",
				data.Namespace, data.Repository))
		return Result{}, false
	}
	if !exists {
		err := errors.New("repository not found")
		ginutil.WriteInvalidParamError(cr.c, err, "repository",
			fmt.Sprintf("Repository %s/%s was not found on %q.",
				data.Namespace, data.Repository, data.URL))
		return Result{}, false
	}

	cr.warnOnUnknownSourceBranch(data)

	created, err := cr.scm.CreatePullRequest(data.Namespace, data.Repository,
		assemblePullRequest(data))
	if err != nil {
		ginutil.WriteAPIClientWriteError(cr.c, err,
			fmt.Sprintf("Unable to create pull request from %q into %q on repository %s/%s.",
				data.Source, data.Target, data.Namespace, data.Repository))
		return Result{}, false
	}

	result := Result{
		ID:  created.ID,
		URL: webURL(data.URL, data.Namespace, data.Repository, created.ID),
	}
	log.Info().
		WithString("id", result.ID).
		WithString("url", result.URL).
		Message("Created pull request.")
	return result, true
}

func (cr *scmCreator) validateWritesProblem(data Input) bool {
	requiredFields := []struct {
		name  string
		value string
	}{
		{"url", data.URL},
		{"token", data.Token},
		{"namespace", data.Namespace},
		{"repository", data.Repository},
		{"source", data.Source},
	}
	for _, field := range requiredFields {
		if field.value == "" {
			err := fmt.Errorf("missing required property: %s", field.name)
			ginutil.WriteInvalidParamError(cr.c, err, field.name,
				fmt.Sprintf("Unable to create pull request due to empty %s.", field.name))
			return false
		}
	}
	return true
}

// warnOnUnknownSourceBranch lists the repository's branches to confirm the
// source branch exists. Listing is a best-effort informational call; failures
// only log a warning and never abort the creation.
func (cr *scmCreator) warnOnUnknownSourceBranch(data Input) {
	branches, err := cr.scm.ListBranches(data.Namespace, data.Repository)
	if err != nil {
		log.Warn().
			WithError(err).
			WithStringf("repository", "%s/%s", data.Namespace, data.Repository).
			Message("Failed to list branches. Continuing without branch check.")
		return
	}
	for _, branch := range branches {
		if branch.Name == data.Source {
			return
		}
	}
	log.Warn().
		WithString("branch", data.Source).
		WithStringf("repository", "%s/%s", data.Namespace, data.Repository).
		Message("Source branch was not found among the repository's branches.")
}

func assemblePullRequest(data Input) scmapi.PullRequest {
	target := data.Target
	if target == "" {
		target = defaultTargetBranch
	}
	title := data.Title
	if title == "" {
		title = fmt.Sprintf("Merge %s into %s", data.Source, target)
	}
	description := data.Description
	if description == "" {
		description = fmt.Sprintf("Pull request created by build #%s of job %s.",
			data.BuildNumber, data.JobName)
	}

	pr := scmapi.PullRequest{
		Source:                   data.Source,
		Target:                   target,
		Title:                    title,
		Description:              description,
		Labels:                   data.Labels,
		ShouldDeleteSourceBranch: data.DeleteSourceBranch,
	}
	for _, reviewer := range data.Reviewers {
		pr.Reviewers = append(pr.Reviewers, scmapi.Reviewer{ID: reviewer, Approved: false})
	}
	return pr
}

// webURL composes the browsable URL of a created pull request from the API
// base URL, which in a default SCM-Manager installation ends with "/api".
func webURL(baseURL, namespace, repository, id string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/api")
	return fmt.Sprintf("%s/repo/%s/%s/pull-request/%s", base, namespace, repository, id)
}
