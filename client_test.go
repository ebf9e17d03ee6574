package convertkit

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/listinterop/convertkit-go/internal/mockserver"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func newTestClient(t *testing.T) (*Client, *mockserver.Server) {
	t.Helper()
	server := mockserver.New()
	t.Cleanup(server.Close)

	client, err := New(mockserver.ValidKey, mockserver.ValidSecret, WithBaseURL(server.BaseURL()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, server
}

func lastRequestBody(t *testing.T, server *mockserver.Server) string {
	t.Helper()
	req, ok := server.LastRequest()
	if !ok {
		t.Fatal("no request was received")
	}
	return string(req.Body)
}

func TestNew_RequiresCredentials(t *testing.T) {
	if _, err := New("", "secret"); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}
	if _, err := New("key", ""); !errors.Is(err, ErrMissingAPISecret) {
		t.Errorf("New() error = %v, want ErrMissingAPISecret", err)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client, err := New("key", "secret")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != "https://api.convertkit.com/v3" {
		t.Errorf("BaseURL() = %s", client.BaseURL())
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New("key", "secret", WithBaseURL("https://example.com/v3/"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != "https://example.com/v3" {
		t.Errorf("BaseURL() = %s", client.BaseURL())
	}
}

func TestFindFormByID(t *testing.T) {
	client, _ := newTestClient(t)

	form, err := client.FindFormByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindFormByID() error = %v", err)
	}
	if form.ID() != 1234 {
		t.Errorf("ID() = %d, want 1234", form.ID())
	}
	if form.Name() != "Form Name" {
		t.Errorf("Name() = %q, want Form Name", form.Name())
	}
	if _, ok := form.Format(); ok {
		t.Error("Format() should be absent")
	}
}

func TestFindFormByID_NotFound(t *testing.T) {
	client, _ := newTestClient(t)

	form, err := client.FindFormByID(context.Background(), 2)
	if form != nil {
		t.Errorf("form = %v, want nil", form)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code() != http.StatusNotFound {
		t.Errorf("Code() = %d, want 404", apiErr.Code())
	}
	if apiErr.Request == nil || apiErr.Response == nil {
		t.Error("APIError should carry the request and the response")
	}
}

func TestListTags(t *testing.T) {
	client, _ := newTestClient(t)

	tags, err := client.ListTags(context.Background())
	if err != nil {
		t.Fatalf("ListTags() error = %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	if tags[0].ID() != 123 || tags[0].Name() != "Tag 1" {
		t.Errorf("tags[0] = %d %q", tags[0].ID(), tags[0].Name())
	}
	if tags[1].ID() != 456 || tags[1].Name() != "Tag 2" {
		t.Errorf("tags[1] = %d %q", tags[1].ID(), tags[1].Name())
	}
}

func TestListTags_InvalidElement(t *testing.T) {
	client, server := newTestClient(t)
	server.Handle(mockserver.Route{
		Method:      http.MethodGet,
		Path:        "/tags",
		Query:       map[string][]string{"api_key": {mockserver.ValidKey}},
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        `{"tags":[{"id":123,"name":"","created_at":"2022-05-05T11:45:26.000Z"}]}`,
	})

	_, err := client.ListTags(context.Background())
	if !errors.Is(err, ErrAssertion) {
		t.Errorf("ListTags() error = %v, want assertion failure", err)
	}
}

func TestFindTagByName(t *testing.T) {
	client, _ := newTestClient(t)

	for _, name := range []string{"tag 1", "TAG 1", "Tag 1", "tag 2"} {
		t.Run(name, func(t *testing.T) {
			tag, err := client.FindTagByName(context.Background(), name)
			if err != nil {
				t.Fatalf("FindTagByName() error = %v", err)
			}
			if tag == nil {
				t.Fatal("FindTagByName() = nil, want a tag")
			}
			if !strings.EqualFold(tag.Name(), name) {
				t.Errorf("Name() = %q, want %q", tag.Name(), name)
			}
		})
	}
}

func TestFindTagByName_Unknown(t *testing.T) {
	client, _ := newTestClient(t)

	tag, err := client.FindTagByName(context.Background(), "Foo")
	if err != nil {
		t.Fatalf("FindTagByName() error = %v", err)
	}
	if tag != nil {
		t.Errorf("FindTagByName() = %v, want nil", tag)
	}
}

func TestCreateTag(t *testing.T) {
	client, server := newTestClient(t)

	if err := client.CreateTag(context.Background(), "Baz", "Bomb"); err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}

	if body := lastRequestBody(t, server); body != `{"tag":[{"name":"Baz"},{"name":"Bomb"}]}` {
		t.Errorf("body = %s", body)
	}
	req, _ := server.LastRequest()
	if req.Query.Get("api_secret") != mockserver.ValidSecret {
		t.Errorf("api_secret = %q", req.Query.Get("api_secret"))
	}
	if req.Query.Has("api_key") {
		t.Error("tag creation must not send api_key")
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", req.Header.Get("Content-Type"))
	}
}

func TestCreateTag_InvalidNames(t *testing.T) {
	client, server := newTestClient(t)

	tests := map[string][]string{
		"no names":   nil,
		"empty name": {"Baz", ""},
	}
	for name, names := range tests {
		t.Run(name, func(t *testing.T) {
			err := client.CreateTag(context.Background(), names...)
			if !errors.Is(err, ErrAssertion) {
				t.Errorf("CreateTag() error = %v, want assertion failure", err)
			}
		})
	}

	if n := len(server.Requests()); n != 0 {
		t.Errorf("%d requests sent, want 0", n)
	}
}

func TestSubscribeToForm(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		tags      []TagRef
		want      string
	}{
		{
			name:      "with first name",
			firstName: "Jim",
			want:      `{"email":"me@example.com","first_name":"Jim"}`,
		},
		{
			name: "without first name",
			want: `{"email":"me@example.com"}`,
		},
		{
			name:      "unknown tag is ignored",
			firstName: "Jim",
			tags:      []TagRef{TagName("unknown")},
			want:      `{"email":"me@example.com","first_name":"Jim"}`,
		},
		{
			name:      "tag names resolve to ids",
			firstName: "Jim",
			tags:      []TagRef{TagName("tag 1"), TagName("Tag 2")},
			want:      `{"email":"me@example.com","first_name":"Jim","tags":[123,456]}`,
		},
		{
			name:      "tag ids are checked",
			firstName: "Jim",
			tags:      []TagRef{TagID(123), TagID(999)},
			want:      `{"email":"me@example.com","first_name":"Jim","tags":[123]}`,
		},
		{
			name:      "order follows input",
			firstName: "Jim",
			tags:      []TagRef{TagID(456), TagName("nope"), TagName("TAG 1")},
			want:      `{"email":"me@example.com","first_name":"Jim","tags":[456,123]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(t)

			err := client.SubscribeToForm(context.Background(), 1, "me@example.com", tt.firstName, tt.tags...)
			if err != nil {
				t.Fatalf("SubscribeToForm() error = %v", err)
			}

			req, _ := server.LastRequest()
			if req.Path != "/v3/forms/1/subscribe" || req.Method != http.MethodPost {
				t.Errorf("request = %s %s", req.Method, req.Path)
			}
			if req.Query.Get("api_key") != mockserver.ValidKey {
				t.Errorf("api_key = %q", req.Query.Get("api_key"))
			}
			if body := string(req.Body); body != tt.want {
				t.Errorf("body = %s, want %s", body, tt.want)
			}
		})
	}
}

func TestSubscribeToForm_SkipsTagLookupWithoutTags(t *testing.T) {
	client, server := newTestClient(t)

	if err := client.SubscribeToForm(context.Background(), 1, "me@example.com", ""); err != nil {
		t.Fatalf("SubscribeToForm() error = %v", err)
	}
	if n := len(server.Requests()); n != 1 {
		t.Errorf("%d requests sent, want 1", n)
	}
}

func TestSubscribeToForm_FetchesTagsOnce(t *testing.T) {
	client, server := newTestClient(t)

	err := client.SubscribeToForm(context.Background(), 1, "me@example.com", "", TagName("tag 1"), TagName("tag 2"), TagID(1))
	if err != nil {
		t.Fatalf("SubscribeToForm() error = %v", err)
	}

	var tagLists int
	for _, req := range server.Requests() {
		if req.Path == "/v3/tags" {
			tagLists++
		}
	}
	if tagLists != 1 {
		t.Errorf("tag list fetched %d times, want 1", tagLists)
	}
}

func TestSubscribeToForm_InvalidEmail(t *testing.T) {
	client, server := newTestClient(t)

	for _, email := range []string{"", "not-an-email", "Jim <me@example.com>", "me@"} {
		t.Run(email, func(t *testing.T) {
			err := client.SubscribeToForm(context.Background(), 1, email, "Jim")
			if !errors.Is(err, ErrAssertion) {
				t.Errorf("SubscribeToForm(%q) error = %v, want assertion failure", email, err)
			}
		})
	}

	if n := len(server.Requests()); n != 0 {
		t.Errorf("%d requests sent, want 0", n)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	client, err := New("key", "secret",
		WithBaseURL("https://example.com/v3"),
		WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, cause
		})),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		path string
		call func() error
	}{
		{"FindFormByID", "/v3/forms/1", func() error {
			_, err := client.FindFormByID(context.Background(), 1)
			return err
		}},
		{"ListTags", "/v3/tags", func() error {
			_, err := client.ListTags(context.Background())
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var failure *RequestFailure
			if !errors.As(err, &failure) {
				t.Fatalf("error type = %T, want *RequestFailure", err)
			}
			if !errors.Is(err, cause) {
				t.Error("RequestFailure should wrap the transport error")
			}
			if !strings.Contains(failure.Request.URL.Path, tt.path) {
				t.Errorf("request path = %s, want %s", failure.Request.URL.Path, tt.path)
			}
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	client, server := newTestClient(t)
	server.Handle(mockserver.Route{
		Method:      http.MethodGet,
		Path:        "/forms/1",
		Query:       map[string][]string{"api_key": {mockserver.ValidKey}},
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        "{balls}",
	})

	_, err := client.FindFormByID(context.Background(), 1)

	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("error type = %T, want *CodecError", err)
	}
	if codecErr.Code != CodeSyntax {
		t.Errorf("Code = %v, want %v", codecErr.Code, CodeSyntax)
	}
}

func TestTagRef_String(t *testing.T) {
	if got := TagID(123).String(); got != "123" {
		t.Errorf("TagID(123).String() = %q", got)
	}
	if got := TagName("News").String(); got != "News" {
		t.Errorf("TagName(News).String() = %q", got)
	}
}
