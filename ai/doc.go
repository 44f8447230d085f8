// Package ai provides the abstraction over the external extraction
// service: a language model that turns a document segment into free-text
// CSV rows of entities and relations.
//
// The package defines the EntityExtractor interface plus its
// configuration, allowing the pipeline to depend on an abstraction
// rather than a concrete provider.
//
// # Implementation Packages
//
//   - ai/mistral: production implementation against the Mistral chat API
//     (or any OpenAI-compatible endpoint)
//   - ai/mock: test doubles for unit testing without a live service
//
// Production constructors (mistral.NewEntityExtractor) return the
// EntityExtractor interface to enforce abstraction; mock constructors
// return concrete types so tests can inject behavior and assert call
// counts.
package ai
