// Package fetch delivers the raw text of remote reader exports.
//
// Every client configures three sources: the maestro (tag to article
// mapping), the cabin stock export and the soiled-zone reading log. A source
// reference is either an http(s) URL served by the reader gateway, or an
// object key when the readers drop their exports into an object storage
// bucket instead.
//
// Fetches are bounded by the configured timeout and carry no retry policy;
// the caller decides how to degrade when a source fails.
package fetch
