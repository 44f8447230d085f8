// Package tabular converts the aggregated free-text extraction result
// into row/column data and encodes it as transportable CSV or XLSX
// bytes. Parsing is quote-aware rather than a blind comma split, and
// rows that do not match the expected column count are reported, not
// silently emitted.
package tabular
