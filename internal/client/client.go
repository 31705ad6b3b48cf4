// Package client implements the HTTP client for the randparam APIs.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/forgeci/randparam/internal/api"
)

// Client talks to a randparam server. Definition management goes to the
// authenticated admin API; validation, binding, and descriptor metadata go
// to the form listener.
type Client struct {
	APIURL  string
	FormURL string
	APIKey  string
}

func NewClient(apiURL, formURL, apiKey string) *Client {
	return &Client{
		APIURL:  apiURL,
		FormURL: formURL,
		APIKey:  apiKey,
	}
}

func (c *Client) DefineParam(req api.CreateParamRequest) (*api.ParamInfo, error) {
	var result api.ParamInfo
	if err := c.doJSON("POST", c.APIURL+"/v1/params", true, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListParams() (*api.ListParamsResponse, error) {
	var result api.ListParamsResponse
	if err := c.doJSON("GET", c.APIURL+"/v1/params", true, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListValues(name string) (*api.ListValuesResponse, error) {
	var result api.ListValuesResponse
	if err := c.doJSON("GET", c.APIURL+"/v1/params/"+name+"/values", true, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteParam(name string) error {
	return c.doJSON("DELETE", c.APIURL+"/v1/params/"+name, true, nil, nil)
}

func (c *Client) ListTypes() (*api.ListTypesResponse, error) {
	var result api.ListTypesResponse
	if err := c.doJSON("GET", c.FormURL+"/v1/types", false, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Validate(typeID string, req api.ValidateRequest) (*api.ValidateResponse, error) {
	var result api.ValidateResponse
	if err := c.doJSON("POST", c.FormURL+"/v1/validate/"+typeID, false, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BindValue(name string, req api.BindValueRequest) (*api.BindValueResponse, error) {
	var result api.BindValueResponse
	if err := c.doJSON("POST", c.FormURL+"/v1/params/"+name+"/value", false, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DefaultValue(name string) (*api.DefaultValueResponse, error) {
	var result api.DefaultValueResponse
	if err := c.doJSON("GET", c.FormURL+"/v1/params/"+name+"/default", false, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) doJSON(method, url string, authed bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Errorf("%s", errResp.Error)
}
