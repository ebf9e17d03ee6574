package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	convertkit "github.com/listinterop/convertkit-go"
	"github.com/listinterop/convertkit-go/internal/codec"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
)

const timeLayout = "2006-01-02 15:04:05 MST"

func formatForm(form *convertkit.Form) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", faint(form.ID()), bold(form.Name()))

	format, ok := form.Format()
	if !ok {
		format = "-"
	}
	rows := []struct{ label, value string }{
		{"UID:", form.UID()},
		{"Type:", form.Type()},
		{"Format:", format},
		{"Archived:", strconv.FormatBool(form.Archived())},
		{"Embed JS:", form.EmbedJS()},
		{"Embed URL:", form.EmbedURL()},
		{"Created:", form.CreatedAt().Format(timeLayout)},
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %s %s\n", faint(fmt.Sprintf("%-10s", row.label)), row.value)
	}
	return sb.String()
}

func formatTag(tag *convertkit.Tag) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		faint(fmt.Sprintf("%-8d", tag.ID())),
		cyan(tag.Name()),
		faint(tag.CreatedAt().Format(timeLayout)))
}

func formatTagList(tags []*convertkit.Tag) string {
	if len(tags) == 0 {
		return "No tags found.\n"
	}
	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteString(formatTag(tag))
	}
	return sb.String()
}

func success(msg string) string {
	return green("✓") + " " + msg + "\n"
}

// writeJSON prints v as a single line of JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := codec.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// errorCategory names the failure tier of err.
func errorCategory(err error) string {
	var (
		failure  *convertkit.RequestFailure
		apiErr   *convertkit.APIError
		codecErr *convertkit.CodecError
	)
	switch {
	case errors.As(err, &failure):
		return "transport error"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("api error %d", apiErr.Code())
	case errors.As(err, &codecErr):
		return "decode error"
	case errors.Is(err, convertkit.ErrAssertion),
		errors.Is(err, convertkit.ErrMissingAPIKey),
		errors.Is(err, convertkit.ErrMissingAPISecret):
		return "validation error"
	default:
		return "error"
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", red(errorCategory(err)+":"), err)
}
