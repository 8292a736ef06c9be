package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tagsDoc = `
person:
  name: Tom
  tags: [x]
`

func TestRunCommandFlowValues(t *testing.T) {
	path := writeDoc(t, "tags.yaml", tagsDoc)

	var out strings.Builder
	err := newCommand(&out, io.Discard).Run(context.Background(), []string{
		"deptrack", "run",
		"-d", path,
		"-w", "person.tags",
		"-s", "person.tags=[a, b]",
		"--set", "person.name={first: Jerry, last: Mouse}",
	})
	require.NoError(t, err)

	report := out.String()
	// should keep each flow collection as one write
	assert.Contains(t, report, "  1. person.tags=[a, b]\n    -> person.tags = [a, b]\n")
	assert.Contains(t, report, "  2. person.name={first: Jerry, last: Mouse}\n")
	assert.NotContains(t, report, "  3. ")
	assert.NotContains(t, report, "expected path=value")
	assert.Contains(t, report, "first: Jerry")
}

func TestRunCommandDataFromEnv(t *testing.T) {
	t.Setenv("DEPTRACK_DATA", writeDoc(t, "tags.yaml", tagsDoc))

	var out strings.Builder
	err := newCommand(&out, io.Discard).Run(context.Background(), []string{
		"deptrack", "run", "-w", "person.name", "-s", "person.name=Jerry",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "    -> person.name = Jerry\n")
}

func TestRunCommandMissingDocument(t *testing.T) {
	err := newCommand(io.Discard, io.Discard).Run(context.Background(), []string{
		"deptrack", "run", "-d", "missing.yaml",
	})
	assert.Error(t, err)
}
