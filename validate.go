package convertkit

import (
	"net/mail"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/listinterop/convertkit-go/internal/apierrors"
	"github.com/listinterop/convertkit-go/internal/codec"
)

// requireKeys fails on the first key missing from data.
func requireKeys(data map[string]any, keys ...string) error {
	for _, key := range keys {
		if _, ok := data[key]; !ok {
			return apierrors.Assertf("expected the key %q to exist", key)
		}
	}
	return nil
}

func intField(data map[string]any, key string) (int, error) {
	switch v := data[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 0)
		if err == nil {
			return int(n), nil
		}
	}
	return 0, apierrors.Assertf("expected %q to be an integer. Got: %s", key, typeName(data[key]))
}

func boolField(data map[string]any, key string) (bool, error) {
	v, ok := data[key].(bool)
	if !ok {
		return false, apierrors.Assertf("expected %q to be a boolean. Got: %s", key, typeName(data[key]))
	}
	return v, nil
}

func stringField(data map[string]any, key string) (string, error) {
	v, ok := data[key].(string)
	if !ok {
		return "", apierrors.Assertf("expected %q to be a string. Got: %s", key, typeName(data[key]))
	}
	if v == "" {
		return "", apierrors.Assertf("expected %q to be a non-empty string", key)
	}
	return v, nil
}

// optionalStringField accepts null, reported as absent, or a non-empty string.
func optionalStringField(data map[string]any, key string) (string, bool, error) {
	if data[key] == nil {
		return "", false, nil
	}
	v, err := stringField(data, key)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func timeField(data map[string]any, key string) (time.Time, error) {
	v, err := stringField(data, key)
	if err != nil {
		return time.Time{}, err
	}
	return codec.ParseTimestamp(v)
}

// validateEmail accepts a bare addr-spec: no display name, no angle brackets.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return apierrors.Assertf("expected a value to be a valid e-mail address. Got: %q", email)
	}
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, int, int64, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
