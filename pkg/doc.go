// Package pkg provides the libraries behind metcollection, a client for the
// Metropolitan Museum of Art Collection API.
//
// # Overview
//
// The pkg directory is organized into:
//
//  1. [integrations] - Shared HTTP client, status errors and query encoding
//  2. [integrations/met] - The typed Met Collection API client
//  3. [errors] - Structured errors for command-line input validation
//  4. [observability] - Hooks for metrics and tracing of API requests
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// Every API call is a single round trip:
//
//	typed call (ListObjects, GetObject, ListDepartments, Search)
//	         ↓
//	    [integrations/met] builds the URL and query string
//	         ↓
//	    [integrations] sends one GET, checks the status, decodes JSON
//	         ↓
//	    typed response (ObjectSummaryList, ObjectDetails, DepartmentList)
//
// Nothing is cached and nothing is retried.
//
// # Quick Start
//
//	client := met.NewClient()
//	opts := met.NewSearchOptions().HasImages(true).Medium("Paintings", "Drawings")
//	res, err := client.Search(ctx, "sunflowers", opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Total, "matches")
//
// [integrations]: github.com/matzehuels/metcollection/pkg/integrations
// [integrations/met]: github.com/matzehuels/metcollection/pkg/integrations/met
// [errors]: github.com/matzehuels/metcollection/pkg/errors
// [observability]: github.com/matzehuels/metcollection/pkg/observability
// [buildinfo]: github.com/matzehuels/metcollection/pkg/buildinfo
package pkg
