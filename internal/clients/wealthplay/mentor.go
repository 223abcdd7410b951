package wealthplay

import "context"

// Ask relays a lesson question to the AI mentor and returns its reply.
// Older backend versions answered under "response" instead of "answer".
func (c *Client) Ask(ctx context.Context, courseID, moduleID, question string) (string, error) {
	var resp struct {
		Answer   string `json:"answer"`
		Response string `json:"response"`
	}
	err := c.postJSON(ctx, "/api/chat/mentor/respond/", map[string]string{
		"course_id": courseID,
		"module_id": moduleID,
		"question":  question,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Answer != "" {
		return resp.Answer, nil
	}
	return resp.Response, nil
}
