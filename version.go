package main

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/app"
)

// AppVersion holds metadata about this application's version, as read from
// the embedded version.yaml file.
var AppVersion app.Version

//go:embed version.yaml
var versionFile []byte

func loadEmbeddedVersionFile() error {
	return app.UnmarshalVersionYAML(versionFile, &AppVersion)
}

// getVersionHandler godoc
// @Summary Returns the version of this API
// @Accept json
// @Produce json
// @Success 200 {object} app.Version
// @Router /version [get]
func getVersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, AppVersion)
}
