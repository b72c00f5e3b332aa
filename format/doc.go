// Package format maps a format tag to an encode/decode pair for textual
// configuration data.
//
// The tag set is closed: JSON, XML, YAML, TOML, and KV. Each tag carries a
// fixed set of default encoding options which callers may shadow per call;
// caller keys win in a shallow merge. An unrecognized tag fails with
// [ErrUnsupportedFormat] before anything else happens, so dispatch errors
// surface ahead of any I/O a caller might perform around the codec.
//
// Encoded output is normalized to '\n' line endings with exactly one
// trailing newline, so a decode/re-encode cycle is byte-stable across
// platforms.
//
// The package-level [Encode], [Decode], and [DefaultOptions] functions use a
// single [Registry] constructed at process start and never mutated. Code
// that wants an explicit dependency can take a *Registry from [Default] or
// [NewRegistry] instead.
package format
