// Package jolokia implements a client for inspecting ActiveMQ queues through
// the broker's Jolokia HTTP bridge.
package jolokia

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-pipeline-utils/pkg/requests"
)

var log = logger.NewScoped("JOLOKIA")

var destinationNamePattern = regexp.MustCompile(`destinationName=([^,]+)`)

// Client is used to talk with an ActiveMQ broker's Jolokia endpoint, found at
// http://{host}:{port}/api/jolokia.
type Client struct {
	Host string
	Port int
	// UserName and Password are optional HTTP basic auth credentials,
	// attached by the WithAuth call variants and, when set, by the discovery
	// and per-queue reads of GetDetailedQueueInfo.
	UserName string
	Password string
}

type searchRequest struct {
	Type  string `json:"type"`
	MBean string `json:"mbean"`
}

type searchResponse struct {
	Value []string `json:"value"`
}

type readResponse struct {
	Value struct {
		QueueSize     int64 `json:"QueueSize"`
		ConsumerCount int64 `json:"ConsumerCount"`
		EnqueueCount  int64 `json:"EnqueueCount"`
		DequeueCount  int64 `json:"DequeueCount"`
	} `json:"value"`
}

func (c *Client) rest() requests.Client {
	return requests.Client{
		BaseURL: fmt.Sprintf("http://%s:%d/api/jolokia", c.Host, c.Port),
	}
}

func (c *Client) restWithAuth() requests.Client {
	rest := c.rest()
	rest.UserName = c.UserName
	rest.Password = c.Password
	return rest
}

// restAuto attaches the client's basic auth credentials when they are set,
// so that compound calls behave the same as their WithAuth variants.
func (c *Client) restAuto() requests.Client {
	if c.UserName != "" {
		return c.restWithAuth()
	}
	return c.rest()
}

func queueMBean(brokerName, destinationName string) string {
	return fmt.Sprintf(
		"org.apache.activemq:type=Broker,brokerName=%s,destinationType=Queue,destinationName=%s",
		brokerName, destinationName)
}

// ExtractQueueNameFromMBean extracts the destination name from a
// fully-qualified MBean name. The second return value is false when the MBean
// name lacks a destinationName property.
func ExtractQueueNameFromMBean(mbeanName string) (string, bool) {
	match := destinationNamePattern.FindStringSubmatch(mbeanName)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// GetAllQueueNames discovers all queue names on the broker through a GET
// search request with a wildcard MBean pattern.
func (c *Client) GetAllQueueNames(brokerName string) ([]string, error) {
	resp := c.rest().Get("/search/" + queueMBean(brokerName, "*"))
	return parseQueueNames(resp)
}

// GetAllQueueNamesWithPost discovers all queue names on the broker through a
// POST search request, for brokers that reject long GET paths.
func (c *Client) GetAllQueueNamesWithPost(brokerName string) ([]string, error) {
	return c.searchWithPost(c.rest(), brokerName)
}

// GetAllQueueNamesWithAuth discovers all queue names on the broker through a
// POST search request with the client's basic auth credentials attached.
func (c *Client) GetAllQueueNamesWithAuth(brokerName string) ([]string, error) {
	return c.searchWithPost(c.restWithAuth(), brokerName)
}

func (c *Client) searchWithPost(rest requests.Client, brokerName string) ([]string, error) {
	body, err := json.Marshal(searchRequest{
		Type:  "search",
		MBean: queueMBean(brokerName, "*"),
	})
	if err != nil {
		return nil, err
	}
	return parseQueueNames(rest.PostJSON("", body))
}

func parseQueueNames(resp requests.Response) ([]string, error) {
	if resp.StatusCode == 0 {
		return nil, fmt.Errorf("unable to query queue names: %s", resp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, requests.Non2xxStatusError{
			Status:     fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	var search searchResponse
	if err := json.Unmarshal(resp.Body, &search); err != nil {
		return nil, err
	}

	var names []string
	for _, mbeanName := range search.Value {
		if name, ok := ExtractQueueNameFromMBean(mbeanName); ok && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// GetDetailedQueueInfo discovers all queues on the broker and reads the
// metrics of each one, sequentially. A queue whose read fails is recorded in
// the report's Failures and skipped; it never aborts the remaining reads.
// Only a failed discovery fails the whole call. Configured basic auth
// credentials are honored by both the discovery and the per-queue reads.
func (c *Client) GetDetailedQueueInfo(brokerName string) (QueueReport, error) {
	names, err := parseQueueNames(c.restAuto().Get("/search/" + queueMBean(brokerName, "*")))
	if err != nil {
		return QueueReport{}, err
	}

	var report QueueReport
	for _, name := range names {
		details, err := c.readQueueDetails(brokerName, name)
		if err != nil {
			log.Warn().
				WithError(err).
				WithString("queue", name).
				Message("Failed to read queue details. Skipping queue.")
			report.Failures = append(report.Failures, QueueFailure{
				Name:  name,
				Error: err.Error(),
			})
			continue
		}
		report.Queues = append(report.Queues, details)
	}
	return report, nil
}

func (c *Client) readQueueDetails(brokerName, queueName string) (QueueDetails, error) {
	resp := c.restAuto().Get("/read/" + queueMBean(brokerName, queueName))
	if resp.StatusCode == 0 {
		return QueueDetails{}, fmt.Errorf("unable to read queue %q: %s", queueName, resp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return QueueDetails{}, requests.Non2xxStatusError{
			Status:     fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	var read readResponse
	if err := json.Unmarshal(resp.Body, &read); err != nil {
		return QueueDetails{}, err
	}
	return QueueDetails{
		Name:          queueName,
		QueueSize:     read.Value.QueueSize,
		ConsumerCount: read.Value.ConsumerCount,
		EnqueueCount:  read.Value.EnqueueCount,
		DequeueCount:  read.Value.DequeueCount,
	}, nil
}
