package scmapi

// Me represents the authenticated user as reported by SCM-Manager.
type Me struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

// Branch represents branch data retrieved from SCM-Manager.
type Branch struct {
	Name          string `json:"name"`
	Revision      string `json:"revision"`
	DefaultBranch bool   `json:"defaultBranch"`
}

// branchesResponse is the HAL collection response received from SCM-Manager
// when listing branches.
type branchesResponse struct {
	Embedded struct {
		Branches []Branch `json:"branches"`
	} `json:"_embedded"`
}

// Reviewer is a requested reviewer on a pull request.
type Reviewer struct {
	ID       string `json:"id"`
	Approved bool   `json:"approved"`
}

// PullRequest mirrors the SCM-Manager pull request resource schema. The ID is
// assigned server-side and is only set on records returned by the server.
type PullRequest struct {
	ID                       string     `json:"id,omitempty"`
	Source                   string     `json:"source"`
	Target                   string     `json:"target"`
	Title                    string     `json:"title"`
	Description              string     `json:"description,omitempty"`
	Status                   string     `json:"status,omitempty"`
	Reviewers                []Reviewer `json:"reviewer,omitempty"`
	Labels                   []string   `json:"labels,omitempty"`
	ShouldDeleteSourceBranch bool       `json:"shouldDeleteSourceBranch,omitempty"`
}
