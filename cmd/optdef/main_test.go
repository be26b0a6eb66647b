package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = "../../testdata/optdef.yaml"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestQuery_AncestryFlags(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "query", "-c", testConfig, "--parent-type", "group", "--parent-slug", "posts")
	require.NoError(t, err)

	assert.Contains(t, stdout, "slug: title")
	assert.Contains(t, stdout, "slug: excerpt")
	assert.Contains(t, stdout, "slug: schedule")
	assert.NotContains(t, stdout, "logo")
}

func TestQuery_InlineQueryWithOverride(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "query", "-c", testConfig,
		"--query", "{type: section, parent_slug: editor}",
		"--slug", "publishing",
		"--single",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "slug: publishing")
	assert.NotContains(t, stdout, "general")
}

func TestQuery_SingleWithoutMatch(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "query", "-c", testConfig, "--slug", "missing", "--single")
	require.NoError(t, err)
	assert.Equal(t, "false\n", stdout)
}

func TestQuery_JSONOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "query", "-c", testConfig, "--slug", "logo", "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, stdout, "logo")
	assert.Contains(t, stdout, "branding")
	assert.NotContains(t, stdout, "slug: logo", "json output is not block yaml")
}

func TestQuery_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad type flag", args: []string{"query", "--type", "bogus"}},
		{name: "bad parent type flag", args: []string{"query", "--parent-type", "bogus"}},
		{name: "bad inline query", args: []string{"query", "--query", "type: bogus"}},
		{name: "parent below target", args: []string{"query", "--type", "section", "--parent-type", "field", "--parent-slug", "x"}},
		{name: "bad output", args: []string{"query", "-o", "xml"}},
		{name: "missing config", args: []string{"query", "-c", "../../testdata/missing.yaml"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := run(t, testCase.args...)
			require.Error(t, err)
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "check", "-c", testConfig)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", stdout)
}

func TestTree(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "tree", "-c", testConfig, "posts")
	require.NoError(t, err)

	expected := `posts (group)
  writing (set)
    editor (member)
      general (section)
        title (field)
        excerpt (field)
      publishing (section)
        schedule (field)
`
	assert.Equal(t, expected, stdout)
}

func TestTree_DuplicateParentSlugs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "optdef.yaml")
	content := `components:
  a:
    sets:
      shared:
        members:
          one:
            label: One
  b:
    sets:
      shared:
        members:
          two:
            label: Two
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	stdout, _, err := run(t, "tree", "-c", path, "a", "b")
	require.NoError(t, err)

	expected := `a (group)
  shared (set)
    one (member)
    two (member)
b (group)
  shared (set)
    one (member)
    two (member)
`
	assert.Equal(t, expected, stdout)
}

func TestTree_DefaultGroups(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "tree")
	require.NoError(t, err)

	assert.Contains(t, stdout, "dashboard (group)\n")
	assert.Contains(t, stdout, "options (group)\n")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "optdef dev (compiled unknown)\n", stdout)
}
