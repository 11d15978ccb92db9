package talentrag

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const apiSessionChatPath = "/session/%s/chat/"

type askPayload struct {
	Question string `json:"question"`
}

// History fetches the stored transcript for a session in server order.
func (c *Client) History(sessionID string) ([]ChatRecord, error) {
	url := fmt.Sprintf("%s"+apiSessionChatPath, c.APIURL, sessionID)

	var items []map[string]any
	if err := c.getJSON(c.ctx, url, &items); err != nil {
		return nil, err
	}

	c.logger.Debug("got transcript", zap.String("session", sessionID), zap.Int("records", len(items)))

	var records []ChatRecord
	cfg := &mapstructure.DecoderConfig{
		Result:  &records,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return records, nil
}

// Ask posts one question against a session. Any failure, transport or
// status, is reported as a chat request error so the caller can keep the
// unanswered question in place and retry.
func (c *Client) Ask(sessionID, question string) (*AskResponse, error) {
	url := fmt.Sprintf("%s"+apiSessionChatPath, c.APIURL, sessionID)

	var resp AskResponse
	if err := c.postJSON(c.ctx, url, askPayload{Question: question}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChatRequest, err)
	}

	return &resp, nil
}
