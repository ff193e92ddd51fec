package fastuuid

// UUID1 returns a new time-based UUID in canonical form.
func UUID1() (string, error) {
	uuid, err := NewV1()
	if err != nil {
		return "", err
	}
	return uuid.String(), nil
}

// UUID3 returns the MD5 name-based UUID of name in namespace, in canonical form.
// namespace is a well-known token such as "NAMESPACE_DNS" or a canonical UUID.
func UUID3(namespace, name string) (string, error) {
	uuid, err := NewV3(namespace, name)
	if err != nil {
		return "", err
	}
	return uuid.String(), nil
}

// UUID4 returns a new random UUID in canonical form.
func UUID4() string {
	return NewV4().String()
}

// UUID5 returns the SHA-1 name-based UUID of name in namespace, in canonical form.
func UUID5(namespace, name string) (string, error) {
	uuid, err := NewV5(namespace, name)
	if err != nil {
		return "", err
	}
	return uuid.String(), nil
}

// UUID4Batch returns count random UUIDs in canonical form.
func UUID4Batch(count int) []string {
	uuids := NewV4Batch(count)
	out := make([]string, len(uuids))
	for i, uuid := range uuids {
		out[i] = uuid.String()
	}
	return out
}

// FromString builds a UUID value from its canonical form. The empty string
// stands for "no value given" and yields a fresh random UUID, so unlike
// Parse("") it does not fail; use Parse to reject empty input.
func FromString(s string) (UUID, error) {
	if s == "" {
		return NewV4(), nil
	}
	return Parse(s)
}
