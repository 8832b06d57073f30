package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	var out bytes.Buffer
	generate(&out)

	assert.Contains(t, out.String(), "# Build States")
	assert.Contains(t, out.String(), "warnings")
	assert.Contains(t, out.String(), "`#00d032`")
	assert.Contains(t, out.String(), "buildbot/{{.prop.buildername}}")
}
