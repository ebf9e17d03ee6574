package convertkit

import (
	"context"
	"strconv"

	"github.com/listinterop/convertkit-go/internal/api"
	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// Client is a ConvertKit API client. It holds no mutable state, so it can be
// reused for any number of sequential calls; concurrent use is safe only if
// the configured transport is.
type Client struct {
	apiClient *api.Client
}

// TagRef identifies a tag either by ID or by name.
type TagRef struct {
	id     int
	name   string
	byName bool
}

// TagID refers to the tag with the given ID.
func TagID(id int) TagRef {
	return TagRef{id: id}
}

// TagName refers to the first tag whose name matches, ignoring case.
func TagName(name string) TagRef {
	return TagRef{name: name, byName: true}
}

func (r TagRef) String() string {
	if r.byName {
		return r.name
	}
	return strconv.Itoa(r.id)
}

// find returns the first tag in tags that r refers to.
func (r TagRef) find(tags []*Tag) *Tag {
	for _, tag := range tags {
		if r.byName && tag.Matches(r.name) {
			return tag
		}
		if !r.byName && tag.ID() == r.id {
			return tag
		}
	}
	return nil
}

// buildAPIClient creates the API client from the configuration.
func buildAPIClient(apiKey, apiSecret string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:        cfg.baseURL,
		APIKey:         apiKey,
		APISecret:      apiSecret,
		HTTPClient:     cfg.httpClient,
		RequestBuilder: cfg.requestBuilder,
		Timeout:        cfg.timeout,
	})
}

// New creates a new ConvertKit client. Both credentials are required: the
// secret is used for tag creation, the key for everything else.
func New(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, apiSecret, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// FindFormByID retrieves a form. A form that does not exist yields an
// *APIError with code 404.
func (c *Client) FindFormByID(ctx context.Context, id int) (*Form, error) {
	data, err := c.apiClient.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	return FormFromMap(data)
}

// ListTags retrieves every tag on the account.
func (c *Client) ListTags(ctx context.Context) ([]*Tag, error) {
	items, err := c.apiClient.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]*Tag, 0, len(items))
	for _, item := range items {
		tag, err := TagFromMap(item)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateTag creates one tag per name. The created tags are not returned.
func (c *Client) CreateTag(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return apierrors.Assertf("expected at least one tag name")
	}
	for i, name := range names {
		if name == "" {
			return apierrors.Assertf("expected tag name %d to be a non-empty string", i)
		}
	}
	return c.apiClient.CreateTags(ctx, names)
}

// FindTagByName returns the first tag whose name matches, ignoring case.
// It returns nil and no error when there is no such tag.
func (c *Client) FindTagByName(ctx context.Context, name string) (*Tag, error) {
	tags, err := c.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return TagName(name).find(tags), nil
}

// SubscribeToForm subscribes email to a form. An empty firstName is left out
// of the request. Tag references that match no existing tag are dropped
// without error; the rest are sent as tag IDs in the order given.
func (c *Client) SubscribeToForm(ctx context.Context, formID int, email, firstName string, tags ...TagRef) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	ids, err := c.resolveTagIDs(ctx, tags)
	if err != nil {
		return err
	}

	return c.apiClient.Subscribe(ctx, formID, api.SubscribeRequest{
		Email:     email,
		FirstName: firstName,
		Tags:      ids,
	})
}

// resolveTagIDs fetches the tag list once and maps each reference to the ID
// of the tag it matches.
func (c *Client) resolveTagIDs(ctx context.Context, refs []TagRef) ([]int, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	existing, err := c.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int
	for _, ref := range refs {
		if tag := ref.find(existing); tag != nil {
			ids = append(ids, tag.ID())
		}
	}
	return ids, nil
}
