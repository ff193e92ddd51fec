// Package fastuuid generates and formats RFC 4122 Universally Unique Identifiers
// of versions 1, 3, 4 and 5, held in a compact 16-byte value type.
//
// Versions:
//   - Version 1 (time-based): 100ns ticks since 1582-10-15, a clock sequence and a
//     per-process node identifier with the multicast bit set
//   - Version 3 (name-based, MD5) and version 5 (name-based, SHA-1): deterministic,
//     the same namespace and name always give the same UUID
//   - Version 4 (random): 122 random bits from crypto/rand
//
// Basic Usage:
//
//	// Generate a new random UUID
//	id := fastuuid.NewV4()
//	fmt.Println(id.String())
//
//	// Name-based UUID in a well-known namespace
//	id, err := fastuuid.NewV5("NAMESPACE_DNS", "example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Parse a UUID from its canonical form
//	id, err := fastuuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.Version(), id.Hex())
//
// Namespaces:
//
// NewV3 and NewV5 accept a namespace token. The tokens NAMESPACE_DNS, NAMESPACE_URL,
// NAMESPACE_OID and NAMESPACE_X500 select the RFC 4122 Appendix C namespaces; any
// other token must be a canonical UUID string.
//
// String API:
//
// UUID1, UUID3, UUID4, UUID5 and UUID4Batch return canonical strings directly, for
// callers that never need the binary value.
//
// Thread Safety:
//
// All operations are thread-safe. The node identifier used by version 1 is computed
// once per process on first use.
//
// Errors:
//
// Parse failures are reported as *ParseError, unresolved namespaces as *NamespaceError
// and unusable clock readings as *ClockError. Each wraps a sentinel (ErrInvalidFormat,
// ErrInvalidNamespace, ErrClock) for use with errors.Is.
package fastuuid
