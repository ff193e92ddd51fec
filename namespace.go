package fastuuid

// Well-known namespace token names accepted by ResolveNamespace.
const (
	TokenDNS  = "NAMESPACE_DNS"
	TokenURL  = "NAMESPACE_URL"
	TokenOID  = "NAMESPACE_OID"
	TokenX500 = "NAMESPACE_X500"
)

// Canonical string forms of the RFC 4122 Appendix C namespaces.
const (
	NamespaceDNSString  = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	NamespaceURLString  = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	NamespaceOIDString  = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
	NamespaceX500String = "6ba7b814-9dad-11d1-80b4-00c04fd430c8"
)

var (
	NamespaceDNS  = MustParse(NamespaceDNSString)
	NamespaceURL  = MustParse(NamespaceURLString)
	NamespaceOID  = MustParse(NamespaceOIDString)
	NamespaceX500 = MustParse(NamespaceX500String)
)

var wellKnownNamespaces = map[string]UUID{
	TokenDNS:  NamespaceDNS,
	TokenURL:  NamespaceURL,
	TokenOID:  NamespaceOID,
	TokenX500: NamespaceX500,
}

// ResolveNamespace maps a namespace token to its UUID. The token is first matched
// case-sensitively against the well-known names, then parsed as a canonical UUID.
func ResolveNamespace(token string) (UUID, error) {
	if ns, ok := wellKnownNamespaces[token]; ok {
		return ns, nil
	}
	ns, err := Parse(token)
	if err != nil {
		return Nil, &NamespaceError{Token: token, Err: err}
	}
	return ns, nil
}
