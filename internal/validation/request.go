package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// echoRequest reads the validated parts out of an echo.Context.
type echoRequest struct {
	c echo.Context
}

func newEchoRequest(c echo.Context) *echoRequest {
	return &echoRequest{c: c}
}

// Body decodes the JSON body into a generic value (map, slice, string,
// float64, bool or nil). An empty body decodes to nil.
//
// The raw bytes are put back on the request so handlers further down
// can still call c.Bind.
func (r *echoRequest) Body() (any, error) {
	req := r.c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	raw, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(err, "failed to decode request body")
	}
	return body, nil
}

// Params returns the route path parameters keyed by name.
func (r *echoRequest) Params() any {
	names := r.c.ParamNames()
	values := r.c.ParamValues()

	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}

// Query returns the query string as a map. Keys given once map to a
// string, repeated keys map to a []string.
func (r *echoRequest) Query() any {
	values := r.c.QueryParams()

	query := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			query[key] = ""
		case 1:
			query[key] = vals[0]
		default:
			query[key] = append([]string(nil), vals...)
		}
	}
	return query
}
