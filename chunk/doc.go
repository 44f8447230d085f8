// Package chunk partitions document text into bounded-size segments for
// independent extraction, and enforces the cap on total input length.
// Both operations are pure string manipulation with no I/O.
package chunk
