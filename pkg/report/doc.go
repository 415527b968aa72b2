// Package report turns a dry-run ledger snapshot into a summary and renders it.
//
// Build sorts the statuses and counts them per kind. Render writes the result
// in one of several formats: plain text mirroring the generator's classic
// "START SUMMARY" block, a styled terminal variant, JSON, YAML, XML and a
// Markdown table. FormatAuto resolves to terminal or text depending on the
// destination.
package report
