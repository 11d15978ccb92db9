package talentrag

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const apiUploadPath = "/upload/"

// Upload posts the resume and job description as a multipart form and
// returns the session identifier with its analysis. The caller supplies the
// context: upload deadlines belong to the orchestrator, not the client.
func (c *Client) Upload(ctx context.Context, resume, jobDescription FilePart) (*UploadResult, error) {
	url := fmt.Sprintf("%s%s", c.APIURL, apiUploadPath)

	resume.Field = "resume"
	jobDescription.Field = "job_description"

	var result UploadResult
	err := c.postMultipart(ctx, url, []FilePart{resume, jobDescription}, &result)
	if err != nil {
		var statusErr *StatusError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		case errors.As(err, &statusErr), errors.Is(err, ErrMalformedResponse):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	// A success status without a session is still a failed upload.
	if strings.TrimSpace(result.Session) == "" {
		return nil, fmt.Errorf("%w: response is missing a session identifier", ErrMalformedResponse)
	}

	return &result, nil
}
