// Package mistral implements the extraction client against the Mistral
// chat API using its OpenAI-compatible endpoint. One synchronous,
// timeout-bounded call is made per segment; failures are reported as
// errors so the pipeline can skip the segment and continue.
package mistral
