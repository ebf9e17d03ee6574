package api

import (
	"bytes"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// parseErrorResponse builds an APIError from a failed exchange. The body has
// already been read, so the response is given a fresh reader over it.
func parseErrorResponse(req *http.Request, resp *http.Response, body []byte) error {
	resp.Body = io.NopCloser(bytes.NewReader(body))

	apiErr := &apierrors.APIError{
		Request:    req,
		Response:   resp,
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error != "" && errResp.Message != "":
			apiErr.Message = errResp.Error + ": " + errResp.Message
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		default:
			apiErr.Message = errResp.Error
		}
	}

	return apiErr
}
