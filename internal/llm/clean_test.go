package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONOutputStripsFences(t *testing.T) {
	out := CleanJSONOutput("```json\n{\"a\": 1}\n```")
	assert.Equal(t, `{"a": 1}`, out)
}

func TestCleanJSONOutputExtractsFromProse(t *testing.T) {
	out := CleanJSONOutput("Here is the document you asked for:\n{\"a\": {\"b\": \"x}y\"}} trailing")
	assert.Equal(t, `{"a": {"b": "x}y"}}`, out)
}

func TestCleanJSONOutputHandlesEscapes(t *testing.T) {
	out := CleanJSONOutput(`{"a": "quote \" and brace }"}`)
	assert.Equal(t, `{"a": "quote \" and brace }"}`, out)
}

func TestCleanJSONOutputEmptyWhenNoObject(t *testing.T) {
	assert.Empty(t, CleanJSONOutput("no json here"))
	assert.Empty(t, CleanJSONOutput("{unbalanced"))
}
