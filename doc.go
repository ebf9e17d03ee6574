// Package convertkit provides a Go client for the ConvertKit v3 marketing
// email API.
//
// The client looks up forms, lists and creates tags, and subscribes
// addresses to forms. Responses are validated and converted into immutable
// values ([Form], [Tag]); anything that does not have the expected shape is
// rejected with an [AssertionError].
//
// Basic usage:
//
//	client, err := convertkit.New("your-api-key", "your-api-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.SubscribeToForm(ctx, 1234, "me@example.com", "Jim",
//	    convertkit.TagName("Newsletter"), convertkit.TagID(456))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures fall into three groups that callers can tell apart with
// errors.As: [RequestFailure] (the server was never reached), [APIError]
// (the server answered with a status of 299 or above) and [CodecError] (the
// server answered but its body could not be decoded).
package convertkit
