// Package toolspec declares the run_python_file capability for tool-calling
// systems.
//
// A Declaration is plain data: the tool name, a natural-language description
// and a JSON-Schema object describing its parameters. It carries no behavior
// of its own and can be rendered as JSON or YAML, or converted into an MCP
// tool definition.
package toolspec
