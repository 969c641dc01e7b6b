// Package cli implements the metcollection command-line interface.
//
// The CLI is a thin presentation layer over [met.Client]: each command issues
// one API call and prints the result. It is built with cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - objects: List object IDs (--limit caps the printed list)
//   - object <id>: Show one object's record
//   - departments: List curatorial departments
//   - search <query>: Search with optional filters
//   - completion <shell>: Generate shell completion scripts
//
// # Output
//
// --output selects text (styled with lipgloss, tables via go-pretty), json or
// toml. Structured formats print the API values unchanged, with the
// departments envelope already removed.
//
// --base-url points every command at a mirror of the API.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// every request URL, response status and elapsed time. Without it, a spinner
// is drawn on stderr while a request is in flight, if stderr is a terminal.
//
// [met.Client]: github.com/matzehuels/metcollection/pkg/integrations/met.Client
package cli
