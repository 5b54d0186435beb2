package toolspec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunPythonFile(t *testing.T) {
	decl := RunPythonFile()

	assert.Equal(t, "run_python_file", decl.Name)
	assert.NotEmpty(t, decl.Description)
	assert.Equal(t, "object", decl.Parameters.Type)
	assert.Equal(t, []string{"file_path"}, decl.Parameters.Required)

	filePath, ok := decl.Parameters.Properties["file_path"]
	require.True(t, ok)
	assert.Equal(t, "string", filePath.Type)
	assert.Nil(t, filePath.Items)

	args, ok := decl.Parameters.Properties["args"]
	require.True(t, ok)
	assert.Equal(t, "array", args.Type)
	require.NotNil(t, args.Items)
	assert.Equal(t, "string", args.Items.Type)
}

func TestRunPythonFileIsFresh(t *testing.T) {
	first := RunPythonFile()
	first.Parameters.Required[0] = "mutated"
	first.Parameters.Properties["extra"] = Property{Type: "string"}

	second := RunPythonFile()
	assert.Equal(t, []string{"file_path"}, second.Parameters.Required)
	assert.NotContains(t, second.Parameters.Properties, "extra")
}

func TestDeclarationJSON(t *testing.T) {
	data, err := RunPythonFile().JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "run_python_file", decoded["name"])
	params := decoded["parameters"].(map[string]any)
	props := params["properties"].(map[string]any)
	args := props["args"].(map[string]any)
	assert.Equal(t, "string", args["items"].(map[string]any)["type"])
	assert.Equal(t, []any{"file_path"}, params["required"])
}

func TestDeclarationYAML(t *testing.T) {
	data, err := RunPythonFile().YAML()
	require.NoError(t, err)

	var decoded Declaration
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, RunPythonFile(), decoded)
}

func TestDeclarationMCPTool(t *testing.T) {
	tool := RunPythonFile().MCPTool()

	assert.Equal(t, "run_python_file", tool.Name)
	assert.Equal(t, "object", tool.InputSchema.Type)
	assert.Equal(t, []string{"file_path"}, tool.InputSchema.Required)

	args, ok := tool.InputSchema.Properties["args"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", args["type"])
	assert.Equal(t, "string", args["items"].(map[string]any)["type"])

	filePath, ok := tool.InputSchema.Properties["file_path"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", filePath["type"])
	assert.NotEmpty(t, filePath["description"])
}
