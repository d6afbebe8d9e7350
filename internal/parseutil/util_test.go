package parseutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoRef(t *testing.T) {
	var testCases = []struct {
		name          string
		ref           string
		wantNamespace string
		wantName      string
	}{
		{
			name:          "empty ref",
			ref:           "",
			wantNamespace: "",
			wantName:      "",
		},
		{
			name:          "bare namespace",
			ref:           "build",
			wantNamespace: "build",
			wantName:      "",
		},
		{
			name:          "namespace and name",
			ref:           "build/my-app",
			wantNamespace: "build",
			wantName:      "my-app",
		},
		{
			name:          "only split on first slash",
			ref:           "build/my-app/extra",
			wantNamespace: "build",
			wantName:      "my-app/extra",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotNamespace, gotName := ParseRepoRef(tc.ref)
			assert.Equal(t, tc.wantNamespace, gotNamespace)
			assert.Equal(t, tc.wantName, gotName)
		})
	}
}

func TestSplitStringOnceRune(t *testing.T) {
	var testCases = []struct {
		name  string
		input string
		wantA string
		wantB string
	}{
		{
			name:  "empty string",
			input: "",
			wantA: "",
			wantB: "",
		},
		{
			name:  "no delimiter",
			input: "foo",
			wantA: "foo",
			wantB: "",
		},
		{
			name:  "no latter",
			input: "foo/",
			wantA: "foo",
			wantB: "",
		},
		{
			name:  "no former",
			input: "/foo",
			wantA: "",
			wantB: "foo",
		},
		{
			name:  "only split on first delim",
			input: "foo/bar/moo",
			wantA: "foo",
			wantB: "bar/moo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotA, gotB := splitStringOnceRune(tc.input, '/')
			assert.Equal(t, tc.wantA, gotA)
			assert.Equal(t, tc.wantB, gotB)
		})
	}
}
