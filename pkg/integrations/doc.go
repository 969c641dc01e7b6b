// Package integrations provides shared HTTP plumbing for collection API clients.
//
// # Overview
//
// API-specific clients live in subpackages:
//
//   - [met]: The Metropolitan Museum of Art Collection API
//
// # Client Pattern
//
// A subpackage client embeds [*Client] and builds URLs against its base:
//
//	client := met.NewClient()
//	obj, err := client.GetObject(ctx, 436535)
//
// [Client.Get] issues one GET and decodes the JSON body into the caller's
// value. There is no caching and no retry: every call is a single round trip.
//
// # Errors
//
// A non-2xx response becomes a [*StatusError] whose message embeds the numeric
// status ("MET API error: 404"). The body of a failed response is not read.
// Use [StatusCode] or errors.As to recover the code, and errors.Is with
// [ErrNotFound] to test for 404.
//
// Transport failures and JSON decoding failures are returned unchanged, so
// callers can match on *url.Error or *json.SyntaxError directly.
//
// # Instrumentation
//
// Every round trip reports to the hooks registered with
// [observability.SetHTTPHooks]: one request event, then either a response
// event carrying the status and elapsed time or an error event.
//
// # Query Strings
//
// [EncodeQuery] form-encodes parameters in insertion order, which
// [url.Values.Encode] cannot do because it sorts keys.
//
// [met]: github.com/matzehuels/metcollection/pkg/integrations/met
// [observability.SetHTTPHooks]: github.com/matzehuels/metcollection/pkg/observability.SetHTTPHooks
package integrations
