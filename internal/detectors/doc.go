// Package detectors holds the pattern catalog: one matcher per PII category,
// each producing zero or more candidate spans from raw text. Spans are
// reported in Unicode code-point offsets. Checksum-gated categories (CARD,
// RRN) call into the validate package before accepting a candidate; the
// PHONE, EMAIL and ACCOUNT detectors honor the whitelist via Extract.
package detectors
