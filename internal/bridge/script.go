package bridge

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	resultStartMarker = "===REVBOT_RESULT_START==="
	resultEndMarker   = "===REVBOT_RESULT_END==="
)

// prepareScript wraps user code in an output-capture frame. The frame
// redirects stdout/stderr, runs the code, snapshots basic Revit state
// when the ambient document objects exist, and prints a single JSON
// result between sentinel markers so the transports can parse it back
// regardless of what else the host writes around it.
func prepareScript(code string) string {
	var b strings.Builder

	b.WriteString(`import sys
import json
from io import StringIO

_out = StringIO()
_err = StringIO()
_stdout, _stderr = sys.stdout, sys.stderr

_result = {"success": True, "output": "", "error": None, "revit_state": {}}

try:
    sys.stdout = _out
    sys.stderr = _err

`)
	b.WriteString(indent(code, 4))
	b.WriteString(`

    try:
        _result["revit_state"] = {
            "active_view": str(doc.ActiveView.Name) if 'doc' in dir() else None,
            "selection_count": uidoc.Selection.GetElementIds().Count if 'uidoc' in dir() else 0,
        }
    except Exception:
        pass

    _result["output"] = _out.getvalue()

except Exception as e:
    _result["success"] = False
    _result["error"] = str(e)
    _result["output"] = _out.getvalue()

finally:
    sys.stdout = _stdout
    sys.stderr = _stderr

print("` + resultStartMarker + `")
print(json.dumps(_result))
print("` + resultEndMarker + `")
`)

	return b.String()
}

// indents every line of code by the given number of spaces
func indent(code string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		lines[i] = pad + line
	}

	return strings.Join(lines, "\n")
}

// parseWrappedOutput extracts the JSON result between the sentinel
// markers. The second return is false when no marker pair is present,
// in which case callers treat the raw output as-is.
func parseWrappedOutput(output string) (*hostResult, bool) {
	startIdx := strings.Index(output, resultStartMarker)
	if startIdx == -1 {
		return nil, false
	}

	rest := output[startIdx+len(resultStartMarker):]

	endIdx := strings.Index(rest, resultEndMarker)
	if endIdx == -1 {
		return nil, false
	}

	payload := strings.TrimSpace(rest[:endIdx])

	var result hostResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return &hostResult{
			Success: false,
			Output:  output,
			Error:   fmt.Sprintf("result parsing failed: %v", err),
		}, true
	}

	return &result, true
}
