// Package sanitizer normalizes free-form profile and scheduled-job payloads
// before they are written to the row store.
//
// Sanitization is best-effort, not strict validation: fields outside the
// allow-list for the entity type and values that fail a rule are dropped
// silently, never rejected. All functions are idempotent - applying them a
// second time with the same owner id yields the same mapping.
//
// Rules, in precedence order per key:
//   - Keys outside the entity's allow-list are dropped.
//   - The id field survives only as a non-empty string without the
//     client-side temporary-id prefix.
//   - Geocoordinates survive only as finite numbers.
//   - Address fields are always present, coerced to a trimmed string or an
//     explicit null - downstream geocoding relies on the keys existing even
//     when blank.
//   - Everything else: nulls dropped, strings trimmed (dropped when empty),
//     other values passed through unchanged.
package sanitizer
