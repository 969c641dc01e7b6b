// Package met provides an HTTP client for the Metropolitan Museum of Art
// Collection API.
//
// # Overview
//
// The API (https://metmuseum.github.io/) is public and unauthenticated.
// This package covers its four read-only endpoints:
//
//   - GET /objects: every object ID ([Client.ListObjects])
//   - GET /objects/{id}: one object's record ([Client.GetObject])
//   - GET /departments: curatorial departments ([Client.ListDepartments])
//   - GET /search: object IDs matching a query ([Client.Search])
//
// # Usage
//
//	client := met.NewClient()
//
//	opts := met.NewSearchOptions().
//	    Highlight(true).
//	    Medium("Paintings", "Drawings")
//
//	res, err := client.Search(ctx, "sunflowers", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Total, "matches")
//
// # Search Options
//
// Filters are sent after q in the order they were first set. Booleans are
// sent as "true"/"false", integers in decimal, strings as-is and string lists
// joined with "|". A filter set to [None] is omitted. An empty string or an
// empty list is still sent, as "medium=".
//
// # Errors
//
// Non-2xx responses return *[integrations.StatusError] with the message
// "MET API error: <status>". Nothing is cached or retried.
package met
