package toolspec

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

// Names used in the run_python_file declaration
const (
	ToolName      = "run_python_file"
	ParamFilePath = "file_path"
	ParamArgs     = "args"
)

// Declaration describes a callable tool
type Declaration struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Parameters  Schema `json:"parameters" yaml:"parameters"`
}

// Schema is the object schema of a tool's parameters
type Schema struct {
	Type       string              `json:"type" yaml:"type"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
	Required   []string            `json:"required,omitempty" yaml:"required,omitempty"`
}

// Property describes a single parameter
type Property struct {
	Type        string    `json:"type" yaml:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Items       *Property `json:"items,omitempty" yaml:"items,omitempty"`
}

// RunPythonFile returns a fresh declaration of the run_python_file tool.
func RunPythonFile() Declaration {
	return Declaration{
		Name: ToolName,
		Description: "Executes a Python file within the working directory and returns the output from the interpreter. " +
			"The file must exist inside the working directory and end in .py.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				ParamFilePath: {
					Type:        "string",
					Description: "Path to the Python file to execute, relative to the working directory.",
				},
				ParamArgs: {
					Type:        "array",
					Description: "Optional arguments to pass to the Python file.",
					Items: &Property{
						Type:        "string",
						Description: "A single command-line argument.",
					},
				},
			},
			Required: []string{ParamFilePath},
		},
	}
}

// JSON renders the declaration as indented JSON.
func (d Declaration) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal declaration: %w", err)
	}
	return data, nil
}

// YAML renders the declaration as YAML.
func (d Declaration) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal declaration: %w", err)
	}
	return data, nil
}

// MCPTool converts the declaration into an MCP tool definition.
func (d Declaration) MCPTool() mcp.Tool {
	properties := make(map[string]any, len(d.Parameters.Properties))
	for name, prop := range d.Parameters.Properties {
		properties[name] = prop.schemaMap()
	}

	return mcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       d.Parameters.Type,
			Properties: properties,
			Required:   d.Parameters.Required,
		},
	}
}

func (p Property) schemaMap() map[string]any {
	m := map[string]any{"type": p.Type}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Items != nil {
		m["items"] = p.Items.schemaMap()
	}
	return m
}
