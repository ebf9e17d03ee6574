package convertkit

import (
	"time"

	"github.com/listinterop/convertkit-go/internal/codec"
)

// Form is a ConvertKit sign-up form.
type Form struct {
	id        int
	name      string
	createdAt time.Time
	formType  string
	format    string
	hasFormat bool
	embedJS   string
	embedURL  string
	archived  bool
	uid       string
}

var formKeys = []string{"id", "name", "created_at", "type", "format", "embed_js", "embed_url", "archived", "uid"}

// FormFromMap builds a Form from a decoded form object. Every key must be
// present; format may be null but not an empty string.
func FormFromMap(data map[string]any) (*Form, error) {
	if err := requireKeys(data, formKeys...); err != nil {
		return nil, err
	}

	f := &Form{}
	var err error

	if f.id, err = intField(data, "id"); err != nil {
		return nil, err
	}
	if f.archived, err = boolField(data, "archived"); err != nil {
		return nil, err
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"name", &f.name},
		{"type", &f.formType},
		{"embed_js", &f.embedJS},
		{"embed_url", &f.embedURL},
		{"uid", &f.uid},
	}
	for _, s := range fields {
		if *s.dst, err = stringField(data, s.key); err != nil {
			return nil, err
		}
	}

	if f.format, f.hasFormat, err = optionalStringField(data, "format"); err != nil {
		return nil, err
	}
	if f.createdAt, err = timeField(data, "created_at"); err != nil {
		return nil, err
	}

	return f, nil
}

// ID returns the form identifier.
func (f *Form) ID() int { return f.id }

// Name returns the form name.
func (f *Form) Name() string { return f.name }

// CreatedAt returns the creation time in UTC.
func (f *Form) CreatedAt() time.Time { return f.createdAt }

// Type returns the form type, for example "hosted" or "embed".
func (f *Form) Type() string { return f.formType }

// Format returns the display format, if the form has one.
func (f *Form) Format() (string, bool) { return f.format, f.hasFormat }

// EmbedJS returns the URL of the embed script.
func (f *Form) EmbedJS() string { return f.embedJS }

// EmbedURL returns the URL of the hosted form.
func (f *Form) EmbedURL() string { return f.embedURL }

// Archived reports whether the form is archived.
func (f *Form) Archived() bool { return f.archived }

// UID returns the public form UID.
func (f *Form) UID() string { return f.uid }

func (f *Form) String() string { return f.name }

// ToMap returns the wire representation of the form. A missing format is
// written as nil.
func (f *Form) ToMap() map[string]any {
	var format any
	if f.hasFormat {
		format = f.format
	}
	return map[string]any{
		"id":         f.id,
		"name":       f.name,
		"created_at": codec.FormatTimestamp(f.createdAt),
		"type":       f.formType,
		"format":     format,
		"embed_js":   f.embedJS,
		"embed_url":  f.embedURL,
		"archived":   f.archived,
		"uid":        f.uid,
	}
}

// MarshalJSON implements json.Marshaler.
func (f *Form) MarshalJSON() ([]byte, error) {
	return codec.Encode(f.ToMap())
}
