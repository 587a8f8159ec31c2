package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Problem is an RFC7807 error returned by the product API.
type Problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (p *Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("api: %s (%d): %s", p.Title, p.Status, p.Detail)
	}
	return fmt.Sprintf("api: %s (%d)", p.Title, p.Status)
}

// UserMessage returns the text a screen may surface to the user.
func (p *Problem) UserMessage() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// decodeProblem builds a Problem from a non-2xx response. Bodies that are
// not valid problem documents still yield a Problem keyed on the status.
func decodeProblem(resp *http.Response) *Problem {
	p := Problem{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var parsed Problem
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Status != 0 {
			parsed.Status = resp.StatusCode
			return &parsed
		}
	}
	return &p
}
