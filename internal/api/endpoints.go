package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/listinterop/convertkit-go/internal/apierrors"
	"github.com/listinterop/convertkit-go/internal/codec"
)

// GetForm retrieves a form as a decoded JSON object.
func (c *Client) GetForm(ctx context.Context, id int) (map[string]any, error) {
	data, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/forms/%d", id), AuthKey, nil)
	if err != nil {
		return nil, err
	}
	return codec.DecodeObject(data)
}

// ListTags retrieves every tag as a decoded JSON object.
func (c *Client) ListTags(ctx context.Context) ([]map[string]any, error) {
	data, err := c.Do(ctx, http.MethodGet, "/tags", AuthKey, nil)
	if err != nil {
		return nil, err
	}

	result, err := codec.DecodeObject(data)
	if err != nil {
		return nil, err
	}

	raw, ok := result["tags"]
	if !ok {
		return nil, apierrors.Assertf("expected the key %q to exist", "tags")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, apierrors.Assertf("expected %q to be a list. Got: %T", "tags", raw)
	}

	tags := make([]map[string]any, 0, len(items))
	for i, item := range items {
		tag, ok := item.(map[string]any)
		if !ok {
			return nil, apierrors.Assertf("expected tag %d to be an object. Got: %T", i, item)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateTags creates one tag per name. The response body is discarded.
func (c *Client) CreateTags(ctx context.Context, names []string) error {
	req := CreateTagsRequest{Tag: make([]TagName, 0, len(names))}
	for _, name := range names {
		req.Tag = append(req.Tag, TagName{Name: name})
	}
	_, err := c.Do(ctx, http.MethodPost, "/tags", AuthSecret, req)
	return err
}

// Subscribe adds a subscriber to a form.
func (c *Client) Subscribe(ctx context.Context, formID int, req SubscribeRequest) error {
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/forms/%d/subscribe", formID), AuthKey, req)
	return err
}
