package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// MaxDepth is the maximum container nesting accepted by DecodeObject.
const MaxDepth = 10

// ErrMaxDepth is wrapped by the CodecError returned for over-nested input.
var ErrMaxDepth = errors.New("maximum stack depth exceeded")

// ErrTrailingData is wrapped when a document holds more than one value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// DecodeObject parses data as a JSON object.
func DecodeObject(data []byte) (map[string]any, error) {
	if err := checkDepth(data, MaxDepth); err != nil {
		return nil, decodeError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, decodeError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, decodeError(err)
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, &apierrors.CodecError{
			Op:   "decode",
			Code: apierrors.CodeNotObject,
			Err:  apierrors.Assertf("expected a JSON object. Got: %s", describe(value)),
		}
	}
	return object, nil
}

// Encode serializes value as JSON.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, &apierrors.CodecError{Op: "encode", Code: classify(err), Err: err}
	}
	return data, nil
}

func decodeError(err error) error {
	return &apierrors.CodecError{Op: "decode", Code: classify(err), Err: err}
}

func classify(err error) apierrors.ErrorCode {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		unsupportedTyp *json.UnsupportedTypeError
		unsupportedVal *json.UnsupportedValueError
	)
	switch {
	case errors.Is(err, ErrMaxDepth):
		return apierrors.CodeDepth
	case errors.As(err, &syntaxErr), errors.Is(err, ErrTrailingData), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return apierrors.CodeSyntax
	case errors.As(err, &typeErr):
		return apierrors.CodeType
	case errors.As(err, &unsupportedTyp), errors.As(err, &unsupportedVal):
		return apierrors.CodeUnsupported
	default:
		return apierrors.CodeUnknown
	}
}

// checkDepth scans data without recursion and fails when containers nest
// deeper than limit.
func checkDepth(data []byte, limit int) error {
	depth := 0
	inString := false
	escaped := false
	for _, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > limit {
				return ErrMaxDepth
			}
		case '}', ']':
			depth--
		}
	}
	return nil
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	default:
		return "unknown"
	}
}
