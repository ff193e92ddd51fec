package fastuuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// NewHash returns a name-based UUID: the first 16 bytes of h(space || data)
// with the version and variant bits overwritten.
func NewHash(h hash.Hash, space UUID, data []byte, version Version) UUID {
	h.Reset()
	h.Write(space[:])
	h.Write(data)
	var uuid UUID
	copy(uuid[:], h.Sum(nil))
	uuid.setVersion(version)
	return uuid
}

// NewMD5 returns a version 3 UUID for data within the namespace space.
func NewMD5(space UUID, data []byte) UUID {
	return NewHash(md5.New(), space, data, VersionNameBasedMD5)
}

// NewSHA1 returns a version 5 UUID for data within the namespace space.
func NewSHA1(space UUID, data []byte) UUID {
	return NewHash(sha1.New(), space, data, VersionNameBasedSHA1)
}

// NewV3 resolves namespace and returns the version 3 UUID of name within it.
// The same arguments always produce the same UUID.
func NewV3(namespace, name string) (UUID, error) {
	space, err := ResolveNamespace(namespace)
	if err != nil {
		return Nil, err
	}
	return NewMD5(space, []byte(name)), nil
}

// NewV5 is NewV3 with SHA-1 in place of MD5.
func NewV5(namespace, name string) (UUID, error) {
	space, err := ResolveNamespace(namespace)
	if err != nil {
		return Nil, err
	}
	return NewSHA1(space, []byte(name)), nil
}
