package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"profile-stack/internal/models"
)

// parseResponse extracts the JSON object from a model response, tolerating
// prose or fencing around it, and validates the decoded payload.
func parseResponse(response string) (*models.InsightPayload, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in oracle response")
	}
	jsonStr := response[start : end+1]

	var payload models.InsightPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		// Models sometimes emit unescaped quotes inside string values.
		if retryErr := json.Unmarshal([]byte(sanitizeJSON(jsonStr)), &payload); retryErr != nil {
			return nil, fmt.Errorf("decode oracle response: %w (sanitized attempt: %v)", err, retryErr)
		}
	}

	if err := validate(&payload); err != nil {
		return nil, fmt.Errorf("invalid oracle response: %w", err)
	}
	return &payload, nil
}

// sanitizeJSON escapes stray quotes inside single-line string values. It only
// handles the "key": "val"ue" shape; anything fancier still fails decoding.
func sanitizeJSON(jsonStr string) string {
	lines := strings.Split(jsonStr, "\n")
	var out []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if colon := strings.Index(line, ":"); colon != -1 {
			before := line[:colon+1]
			after := strings.TrimSpace(line[colon+1:])

			if strings.HasPrefix(after, "\"") {
				if last := strings.LastIndex(after, "\""); last > 0 {
					content := after[1:last]
					content = strings.ReplaceAll(content, "\\\"", "\"")
					content = strings.ReplaceAll(content, "\"", "\\\"")
					line = before + " \"" + content + "\"" + after[last+1:]
				}
			}
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
