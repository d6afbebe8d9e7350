package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/jolokia"
)

type queueModule struct {
	config *Config
}

func (m queueModule) register(r *gin.Engine) {
	r.GET("/api/pipeline-utils/queues", m.getQueueNamesHandler)
	r.GET("/api/pipeline-utils/queues/details", m.getQueueDetailsHandler)
}

type queueNamesResponse struct {
	Broker string   `json:"broker" example:"localhost"`
	Queues []string `json:"queues"`
}

func (m queueModule) client() *jolokia.Client {
	return &jolokia.Client{
		Host:     m.config.Broker.Host,
		Port:     m.config.Broker.Port,
		UserName: m.config.Broker.UserName,
		Password: m.config.Broker.Password,
	}
}

func (m queueModule) brokerName(c *gin.Context) string {
	if broker := c.Query("broker"); broker != "" {
		return broker
	}
	return m.config.Broker.Name
}

// getQueueNamesHandler godoc
// @Summary List the names of all queues on the ActiveMQ broker
// @Accept json
// @Produce json
// @Param broker query string false "broker name, defaulting to the configured one"
// @Success 200 {object} main.queueNamesResponse
// @Failure 502 "Bad response from the broker"
// @Router /queues [get]
func (m queueModule) getQueueNamesHandler(c *gin.Context) {
	broker := m.brokerName(c)
	client := m.client()

	var (
		names []string
		err   error
	)
	if client.UserName != "" {
		names, err = client.GetAllQueueNamesWithAuth(broker)
	} else {
		names, err = client.GetAllQueueNames(broker)
	}
	if err != nil {
		ginutil.WriteProviderResponseError(c, err,
			fmt.Sprintf("Unable to list queues on broker %q at %s:%d.",
				broker, m.config.Broker.Host, m.config.Broker.Port))
		return
	}

	c.JSON(http.StatusOK, queueNamesResponse{
		Broker: broker,
		Queues: names,
	})
}

// getQueueDetailsHandler godoc
// @Summary Read the metrics of every queue on the ActiveMQ broker
// @Description A queue whose metrics cannot be read is reported in the
// @Description failures list instead of failing the whole report.
// @Accept json
// @Produce json
// @Param broker query string false "broker name, defaulting to the configured one"
// @Success 200 {object} jolokia.QueueReport
// @Failure 502 "Bad response from the broker"
// @Router /queues/details [get]
func (m queueModule) getQueueDetailsHandler(c *gin.Context) {
	broker := m.brokerName(c)

	report, err := m.client().GetDetailedQueueInfo(broker)
	if err != nil {
		ginutil.WriteProviderResponseError(c, err,
			fmt.Sprintf("Unable to read queue details on broker %q at %s:%d.",
				broker, m.config.Broker.Host, m.config.Broker.Port))
		return
	}

	c.JSON(http.StatusOK, report)
}
