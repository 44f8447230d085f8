// Package doctext extracts plain text from source documents (PDF and
// friends) so the extraction pipeline only ever sees text. It is the
// document-to-text collaborator, kept behind a small interface and out
// of the pipeline's dependency graph.
package doctext
