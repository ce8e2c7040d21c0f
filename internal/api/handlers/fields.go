package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

// readFields returns the request body as flat string fields. Multipart,
// urlencoded and JSON object bodies are accepted; JSON arrays are joined with
// commas the same way the client joins them in forms.
func readFields(c echo.Context) (map[string]string, error) {
	req := c.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return readJSONFields(c)
	}

	form, err := c.FormParams()
	if err != nil {
		return nil, fmt.Errorf("parsing form body: %w", err)
	}
	fields := make(map[string]string, len(form))
	for k, v := range form {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields, nil
}

func readJSONFields(c echo.Context) (map[string]string, error) {
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("parsing JSON body: %w", err)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		fields[k] = stringifyJSON(v)
	}
	return fields, nil
}

func stringifyJSON(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringifyJSON(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
