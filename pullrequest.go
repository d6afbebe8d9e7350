package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/parseutil"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/pullrequest"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/scmapi"
)

type prModule struct {
	config *Config
}

func (m prModule) register(r *gin.Engine) {
	r.POST("/api/pipeline-utils/pull-request", m.createPullRequestHandler)
}

// createPullRequestHandler godoc
// @Summary Create a pull request on SCM-Manager from a finished build
// @Accept json
// @Produce json
// @Param input body pullrequest.Input _ "pull request details"
// @Success 200 {object} pullrequest.Result
// @Failure 400 "Bad request"
// @Failure 502 "Bad response from SCM-Manager"
// @Router /pull-request [post]
func (m prModule) createPullRequestHandler(c *gin.Context) {
	var input pullrequest.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		ginutil.WriteInvalidBindError(c, err,
			"One or more parameters failed to parse when reading the request body for pull request details.")
		return
	}

	if input.URL == "" {
		input.URL = m.config.SCM.URL
	}
	if input.Token == "" {
		input.Token = m.config.SCM.Token
	}
	// A combined "namespace/repository" ref is accepted in the namespace
	// field when the repository field is omitted.
	if input.Repository == "" {
		input.Namespace, input.Repository = parseutil.ParseRepoRef(input.Namespace)
	}

	creator := pullrequest.NewCreator(c, &scmapi.Client{
		BaseURL: input.URL,
		Token:   input.Token,
	})
	result, ok := creator.CreateWritesProblem(input)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, result)
}
