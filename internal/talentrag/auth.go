package talentrag

import (
	"fmt"
	"strings"
)

const (
	apiRegisterPath = "/auth/register/"
	apiTokenPath    = "/auth/token/"
)

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access string `json:"access"`
}

// Register creates an account. The response body is not interpreted; any
// non-2xx status fails the call.
func (c *Client) Register(username, email, password string) error {
	url := fmt.Sprintf("%s%s", c.APIURL, apiRegisterPath)

	payload := registerPayload{
		Username: username,
		Email:    email,
		Password: password,
	}

	if err := c.postJSON(c.ctx, url, payload, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrRegistration, err)
	}

	return nil
}

// Login exchanges credentials for a bearer token. A 2xx response without an
// access token is treated as an authentication failure.
func (c *Client) Login(username, password string) (string, error) {
	url := fmt.Sprintf("%s%s", c.APIURL, apiTokenPath)

	var resp tokenResponse
	if err := c.postJSON(c.ctx, url, loginPayload{Username: username, Password: password}, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	token := strings.TrimSpace(resp.Access)
	if token == "" {
		return "", fmt.Errorf("%w: response is missing an access token", ErrAuthentication)
	}

	return token, nil
}
