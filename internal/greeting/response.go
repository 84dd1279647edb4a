package greeting

import (
	"io"
	"net/http"
	"strconv"
)

// Response is the immutable reply produced by a Handler for one dispatch.
type Response struct {
	Status      int
	Body        string
	ContentType string
}

// OK builds a success response with an implied 200 status.
func OK(body, contentType string) Response {
	return Response{Status: http.StatusOK, Body: body, ContentType: contentType}
}

// FromStatus builds a response with an explicit status code.
func FromStatus(status int, body, contentType string) Response {
	return Response{Status: status, Body: body, ContentType: contentType}
}

// Write serializes the response to the wire: status and content type pass
// through unchanged, the body byte for byte.
func (resp Response) Write(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)

	_, err := io.WriteString(w, resp.Body)
	return err
}
