package tools

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// lists the capabilities this service exposes
func ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Tools: availableTools()})
}

func availableTools() []Tool {
	return []Tool{
		{
			Name:        "generate_revit_code",
			Description: "Generate Revit API Python code based on a natural language description of what to accomplish",
			Parameters: []Parameter{
				{
					Name:        "prompt",
					Type:        "string",
					Description: "Natural language description of what the code should do",
					Required:    true,
				},
				{
					Name:        "context",
					Type:        "object",
					Description: "Additional context about the Revit environment (e.g., selected elements, active view)",
					Required:    false,
				},
				{
					Name:        "temperature",
					Type:        "number",
					Description: "Generation temperature between 0 and 1",
					Required:    false,
					Default:     0.2,
				},
			},
		},
		{
			Name:        "execute_pyrevit_script",
			Description: "Execute a Python script in Revit using pyRevit. Use this to test generated code or perform actions in Revit.",
			Parameters: []Parameter{
				{
					Name:        "code",
					Type:        "string",
					Description: "Python code to execute in Revit",
					Required:    true,
				},
				{
					Name:        "timeout",
					Type:        "number",
					Description: "Execution timeout in seconds",
					Required:    false,
					Default:     30,
				},
				{
					Name:        "safe_mode",
					Type:        "boolean",
					Description: "Whether to screen the code against the denylist before execution",
					Required:    false,
					Default:     true,
				},
			},
		},
	}
}
