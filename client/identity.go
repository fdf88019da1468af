package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cinema_console/model"
)

// Login exchanges employee credentials for a token.
func (c *Client) Login(ctx context.Context, in *model.LoginInput) (*model.UserAuthenticate, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodPost, c.identityURL, "/identity/token", nil, payload, "application/json")
	if err != nil {
		return nil, err
	}
	var res model.Result[model.UserAuthenticate]
	if err := decode(raw, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) ChangePassword(ctx context.Context, in *model.ChangePasswordInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodPost, c.identityURL, "/account/change-password", nil, payload, "application/json"); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
