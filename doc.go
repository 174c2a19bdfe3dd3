// Package byteview implements an immutable, reference-counted byte string
// with small-payload inlining.
//
// A ByteView is 24 bytes on a 64-bit target (16 on 32-bit). Payloads of
// InlineMax bytes or fewer are stored directly in the struct; longer
// payloads live in a single heap allocation (the "heap payload region", or
// HPR) that is shared, via an atomic reference count, between every
// ByteView that views it. Cloning a long ByteView, or slicing it into
// another long sub-range, never copies the payload - it only retains the
// HPR. Slicing down to a short sub-range re-inlines the result and never
// touches the refcount at all.
//
// The design mirrors Polars' string type, CedarDB's German strings,
// Umbra's string, Velox' StringView and Apache Arrow's binary view - see
// https://pola.rs/posts/polars-string-type and
// https://cedardb.com/blog/german_strings for background.
package byteview
