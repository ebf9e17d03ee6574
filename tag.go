package convertkit

import (
	"time"

	"golang.org/x/text/cases"

	"github.com/listinterop/convertkit-go/internal/codec"
)

// Tag is a subscriber tag.
type Tag struct {
	id        int
	name      string
	createdAt time.Time
}

// TagFromMap builds a Tag from a decoded tag object with the keys id, name
// and created_at.
func TagFromMap(data map[string]any) (*Tag, error) {
	if err := requireKeys(data, "id", "name", "created_at"); err != nil {
		return nil, err
	}

	id, err := intField(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}
	createdAt, err := timeField(data, "created_at")
	if err != nil {
		return nil, err
	}

	return &Tag{id: id, name: name, createdAt: createdAt}, nil
}

// ID returns the tag identifier.
func (t *Tag) ID() int { return t.id }

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// CreatedAt returns the creation time in UTC.
func (t *Tag) CreatedAt() time.Time { return t.createdAt }

func (t *Tag) String() string { return t.name }

// Matches reports whether name equals the tag name, ignoring case.
func (t *Tag) Matches(name string) bool {
	fold := cases.Fold()
	return fold.String(t.name) == fold.String(name)
}

// ToMap returns the wire representation of the tag.
func (t *Tag) ToMap() map[string]any {
	return map[string]any{
		"id":         t.id,
		"name":       t.name,
		"created_at": codec.FormatTimestamp(t.createdAt),
	}
}

// MarshalJSON implements json.Marshaler.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return codec.Encode(t.ToMap())
}
