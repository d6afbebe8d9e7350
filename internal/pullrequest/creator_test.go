package pullrequest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-pipeline-utils/internal/scmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePullRequestDefaults(t *testing.T) {
	var testCases = []struct {
		name            string
		input           Input
		wantTarget      string
		wantTitle       string
		wantDescription string
	}{
		{
			name: "all fields given",
			input: Input{
				Source:      "feature/login",
				Target:      "develop",
				Title:       "some title",
				Description: "some description",
			},
			wantTarget:      "develop",
			wantTitle:       "some title",
			wantDescription: "some description",
		},
		{
			name: "target defaults to main",
			input: Input{
				Source: "feature/login",
				Title:  "some title",
			},
			wantTarget:      "main",
			wantTitle:       "some title",
			wantDescription: "Pull request created by build # of job .",
		},
		{
			name: "title is generated",
			input: Input{
				Source: "feature/login",
				Target: "develop",
			},
			wantTarget:      "develop",
			wantTitle:       "Merge feature/login into develop",
			wantDescription: "Pull request created by build # of job .",
		},
		{
			name: "description embeds build metadata",
			input: Input{
				Source:      "feature/login",
				JobName:     "my-app-pipeline",
				BuildNumber: "42",
			},
			wantTarget:      "main",
			wantTitle:       "Merge feature/login into main",
			wantDescription: "Pull request created by build #42 of job my-app-pipeline.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pr := assemblePullRequest(tc.input)
			assert.Equal(t, tc.wantTarget, pr.Target)
			assert.Equal(t, tc.wantTitle, pr.Title)
			assert.Equal(t, tc.wantDescription, pr.Description)
		})
	}
}

func TestAssemblePullRequestMapsReviewers(t *testing.T) {
	pr := assemblePullRequest(Input{
		Source:    "feature/login",
		Reviewers: []string{"alice", "bob"},
	})
	assert.Equal(t, []scmapi.Reviewer{
		{ID: "alice", Approved: false},
		{ID: "bob", Approved: false},
	}, pr.Reviewers)
}

func TestAssemblePullRequestCopiesLabelsAndDeleteFlag(t *testing.T) {
	pr := assemblePullRequest(Input{
		Source:             "feature/login",
		Labels:             []string{"automated"},
		DeleteSourceBranch: true,
	})
	assert.Equal(t, []string{"automated"}, pr.Labels)
	assert.True(t, pr.ShouldDeleteSourceBranch)
}

func TestWebURL(t *testing.T) {
	var testCases = []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "api suffix is trimmed",
			baseURL: "https://scm.local/scm/api",
			want:    "https://scm.local/scm/repo/build/my-app/pull-request/7",
		},
		{
			name:    "trailing slash",
			baseURL: "https://scm.local/scm/api/",
			want:    "https://scm.local/scm/repo/build/my-app/pull-request/7",
		},
		{
			name:    "no api suffix",
			baseURL: "https://scm.local/scm",
			want:    "https://scm.local/scm/repo/build/my-app/pull-request/7",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, webURL(tc.baseURL, "build", "my-app", "7"))
		})
	}
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/pipeline-utils/pull-request", nil)
	return c, recorder
}

func TestCreateWritesProblemOnMissingFields(t *testing.T) {
	var requestCount int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
	}))
	defer srv.Close()

	var testCases = []struct {
		name  string
		input Input
	}{
		{
			name:  "missing url",
			input: Input{Token: "t", Namespace: "build", Repository: "my-app", Source: "feature/login"},
		},
		{
			name:  "missing token",
			input: Input{URL: srv.URL, Namespace: "build", Repository: "my-app", Source: "feature/login"},
		},
		{
			name:  "missing namespace",
			input: Input{URL: srv.URL, Token: "t", Repository: "my-app", Source: "feature/login"},
		},
		{
			name:  "missing repository",
			input: Input{URL: srv.URL, Token: "t", Namespace: "build", Source: "feature/login"},
		},
		{
			name:  "missing source",
			input: Input{URL: srv.URL, Token: "t", Namespace: "build", Repository: "my-app"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, recorder := newTestContext(t)
			creator := NewCreator(c, &scmapi.Client{BaseURL: tc.input.URL, Token: tc.input.Token})

			_, ok := creator.CreateWritesProblem(tc.input)
			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
	assert.Equal(t, 0, requestCount, "validation must precede any network call")
}

func TestCreateWritesProblemHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/me":
			w.Write([]byte(`{"name":"jane","displayName":"Jane Doe","mail":"jane@example.com"}`))
		case "/v2/repositories/build/my-app":
			w.Write([]byte(`{"namespace":"build","name":"my-app"}`))
		case "/v2/repositories/build/my-app/branches/":
			w.Write([]byte(`{"_embedded":{"branches":[{"name":"main"},{"name":"feature/login"}]}}`))
		case "/v2/pull-requests/build/my-app":
			w.Write([]byte(`{"id":"7","source":"feature/login","target":"main","title":"some title"}`))
		default:
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c, _ := newTestContext(t)
	creator := NewCreator(c, &scmapi.Client{BaseURL: srv.URL, Token: "sample token"})

	result, ok := creator.CreateWritesProblem(Input{
		URL:        srv.URL,
		Token:      "sample token",
		Namespace:  "build",
		Repository: "my-app",
		Source:     "feature/login",
		Title:      "some title",
	})
	require.True(t, ok)
	assert.Equal(t, "7", result.ID)
	assert.Equal(t, srv.URL+"/repo/build/my-app/pull-request/7", result.URL)
}

func TestCreateWritesProblemOnMissingRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/me":
			w.Write([]byte(`{"name":"jane","displayName":"Jane Doe","mail":"jane@example.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, recorder := newTestContext(t)
	creator := NewCreator(c, &scmapi.Client{BaseURL: srv.URL, Token: "sample token"})

	_, ok := creator.CreateWritesProblem(Input{
		URL:        srv.URL,
		Token:      "sample token",
		Namespace:  "build",
		Repository: "no-such-repo",
		Source:     "feature/login",
	})
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
