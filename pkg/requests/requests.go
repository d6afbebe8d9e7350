// Package requests wraps the plumbing of issuing a single synchronous HTTP
// request and capturing its outcome in a plain structure.
package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

// Response is the outcome of one HTTP exchange. It is the single channel for
// both success and failure: transport errors are captured in the Error field
// with a zeroed StatusCode instead of being returned as Go errors.
type Response struct {
	StatusCode int
	Body       []byte
	Error      string
}

// Successful reports whether the exchange completed with a non-failing HTTP
// status, meaning any status below 400 (Bad Request).
func (r Response) Successful() bool {
	return r.Error == "" && r.StatusCode > 0 && r.StatusCode < http.StatusBadRequest
}

// Client issues requests against a fixed base URL with a fixed credential.
// The zero value sends unauthenticated requests. Values are not mutated after
// construction.
type Client struct {
	BaseURL string
	// BearerToken, when set, is sent as "Authorization: Bearer <token>".
	BearerToken string
	// UserName and Password, when BearerToken is empty and UserName is set,
	// are sent as HTTP basic auth.
	UserName string
	Password string
}

// Do performs a single synchronous HTTP call against the client's base URL.
// The path is appended verbatim to the base URL. A non-empty body is sent
// with the given content type, defaulting to "application/json".
func (c Client) Do(method, path string, body []byte, contentType string) Response {
	requestURL := strings.TrimSuffix(c.BaseURL, "/") + path

	req, err := http.NewRequest(method, requestURL, bytes.NewReader(body))
	if err != nil {
		return Response{Error: err.Error()}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	} else if c.UserName != "" {
		req.SetBasicAuth(c.UserName, c.Password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Response{Error: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode, Error: err.Error()}
	}

	result := Response{
		StatusCode: resp.StatusCode,
		Body:       bodyBytes,
	}
	if resp.StatusCode >= http.StatusBadRequest {
		message := strings.TrimSpace(string(bodyBytes))
		if message == "" {
			message = fmt.Sprintf("server responded with status %s", resp.Status)
		}
		result.Error = message
	}
	return result
}

// Get performs a GET request without a body.
func (c Client) Get(path string) Response {
	return c.Do(http.MethodGet, path, nil, "")
}

// PostJSON performs a POST request with a JSON body.
func (c Client) PostJSON(path string, body []byte) Response {
	return c.Do(http.MethodPost, path, body, "application/json")
}

// UnmarshalJSON unmarshals the body of a successful response into result.
// An unsuccessful response is converted into an error carrying the captured
// diagnostics.
func UnmarshalJSON(result interface{}, resp Response) error {
	if resp.Error != "" && resp.StatusCode == 0 {
		return fmt.Errorf("request failed: %s", resp.Error)
	}
	if !resp.Successful() {
		return newNon2xxStatusError(resp)
	}
	return json.Unmarshal(resp.Body, result)
}

// ConstructGetURL creates a GET request URL from a base URL, a map of query
// parameters, and a formatted path.
func ConstructGetURL(
	rawURL string, queries map[string][]string, format string, values ...interface{}) (*url.URL, error) {

	urlPath, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	urlPath.Path = fmt.Sprintf(format, values...)
	var q url.Values = queries
	urlPath.RawQuery = q.Encode()

	return urlPath, nil
}
