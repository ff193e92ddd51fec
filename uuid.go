package fastuuid

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

// Nil is the nil UUID (all zeros)
var Nil UUID

const canonicalLen = 36

// segment offsets of the 16 octets inside the canonical form
var octetOffsets = [16]int{
	0, 2, 4, 6,
	9, 11,
	14, 16,
	19, 21,
	24, 26, 28, 30, 32, 34,
}

// Version returns the version of the UUID, read from the high nibble of octet 6.
// Any value 0-15 is reported as found.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [canonicalLen]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// GoString renders the UUID as a constructor call, e.g. fastuuid.MustParse("...").
func (u UUID) GoString() string {
	return fmt.Sprintf("fastuuid.MustParse(%q)", u.String())
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
// Hex digits may be upper or lower case. Any other shape fails with *ParseError.
func Parse(s string) (UUID, error) {
	var uuid UUID
	if len(s) != canonicalLen {
		return uuid, &ParseError{
			Reason: fmt.Sprintf("invalid length %d, expected %d", len(s), canonicalLen),
			Input:  s,
		}
	}
	for _, pos := range [...]int{8, 13, 18, 23} {
		if s[pos] != '-' {
			return uuid, &ParseError{Reason: fmt.Sprintf("missing hyphen at offset %d", pos), Input: s}
		}
	}
	for i, x := range octetOffsets {
		hi, ok1 := fromHexChar(s[x])
		lo, ok2 := fromHexChar(s[x+1])
		if !ok1 || !ok2 {
			at := x
			if ok1 {
				at = x + 1
			}
			return Nil, &ParseError{
				Reason: fmt.Sprintf("invalid hex character %q at offset %d", s[at], at),
				Input:  s,
			}
		}
		uuid[i] = hi<<4 | lo
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("fastuuid: Parse(%q): %v", s, err))
	}
	return uuid
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [canonicalLen]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// Strings must be canonical; byte slices may be 16 raw octets or canonical text.
func (u *UUID) Scan(src interface{}) error {
	var text string
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		text = src
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		text = string(src)
	default:
		return fmt.Errorf("fastuuid: cannot scan type %T into UUID", src)
	}
	if text == "" {
		return nil
	}
	id, err := Parse(text)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// setVersion stamps the version nibble and the RFC 4122 variant bits.
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
}
