package handler

import (
	"encoding/json"
	"io"

	"hushhnotify/pkg/errors"

	"github.com/labstack/echo/v4"
)

// callableRequest is the body shape callable clients send: {"data": ...}.
type callableRequest struct {
	Data json.RawMessage `json:"data"`
}

// bindCallable decodes the callable envelope into out. An empty body or a
// null data field leaves out at its zero value so validation reports the
// missing fields instead of a transport error.
func bindCallable(c echo.Context, out interface{}) error {
	var req callableRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && err != io.EOF {
		return errors.BadRequest("Request body must be a JSON object with a data field", err)
	}

	if len(req.Data) == 0 || string(req.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(req.Data, out); err != nil {
		return errors.BadRequest("Invalid request data", err)
	}
	return nil
}

func callerUID(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}
