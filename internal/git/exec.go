package git

import (
	"context"
	"strings"
)

// run executes git in the client's directory and returns stdout. A non-zero
// exit becomes a *cmd.Failure.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, c.dir, "git", args...)
	if err != nil {
		return "", err
	}
	if err := res.Err("git", args...); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// runTrimmed is run with surrounding whitespace removed from stdout.
func (c *Client) runTrimmed(ctx context.Context, args ...string) (string, error) {
	out, err := c.run(ctx, args...)
	return strings.TrimSpace(out), err
}
