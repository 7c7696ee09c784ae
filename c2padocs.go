// Package c2padocs provides resilient retrieval, caching, and search over
// the C2PA technical documentation corpus: the versioned HTML specification
// and the official GitHub repositories. It exposes a host-allowlisted fetch
// client with retry and credential sanitization, a heading-segmented section
// index over the specification, and a ranked search with permalink citations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., http/, goquery/, cache/).
package c2padocs
