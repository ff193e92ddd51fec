package fastuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewV5_KnownVectors(t *testing.T) {
	tests := []struct {
		namespace string
		name      string
		want      string
	}{
		{TokenDNS, "example.com", "cfbff0d1-9375-5685-968c-48ce8b15ae17"},
		{TokenDNS, "python.org", "886313e1-3b8a-5372-9b90-0c9aee199e5d"},
		{NamespaceDNSString, "example.com", "cfbff0d1-9375-5685-968c-48ce8b15ae17"},
	}
	for _, tt := range tests {
		got, err := NewV5(tt.namespace, tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestNewV3_KnownVectors(t *testing.T) {
	got, err := NewV3(TokenDNS, "python.org")
	require.NoError(t, err)
	assert.Equal(t, "6fa459ea-ee8a-3ca4-894e-db77e160355e", got.String())
}

func TestNameBased_VersionAndVariant(t *testing.T) {
	names := []string{"", "example.com", "https://example.com/a?b=c", "1.3.6.1", "cn=John,dc=example", "ünïcødé"}
	for _, token := range []string{TokenDNS, TokenURL, TokenOID, TokenX500, sampleString} {
		for _, name := range names {
			v3, err := NewV3(token, name)
			require.NoError(t, err)
			v5, err := NewV5(token, name)
			require.NoError(t, err)

			assert.Equal(t, VersionNameBasedMD5, v3.Version())
			assert.Equal(t, VersionNameBasedSHA1, v5.Version())
			assert.Equal(t, VariantRFC4122, v3.Variant())
			assert.Equal(t, VariantRFC4122, v5.Variant())
			assert.Equal(t, byte(0x80), v3[8]&0xc0)
			assert.Equal(t, byte(0x80), v5[8]&0xc0)
			assert.NotEqual(t, v3, v5)

			assert.Equal(t, v3, MustParse(v3.String()))
			assert.Equal(t, v5, MustParse(v5.String()))
		}
	}
}

func TestNameBased_Deterministic(t *testing.T) {
	a3, err := NewV3(TokenURL, "https://example.com")
	require.NoError(t, err)
	b3, err := NewV3(TokenURL, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, a3, b3)

	a5, err := NewV5(TokenURL, "https://example.com")
	require.NoError(t, err)
	b5, err := NewV5(TokenURL, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, a5, b5)

	other, err := NewV5(TokenDNS, "https://example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a5, other)
}

func TestNameBased_MatchesGoogleUUID(t *testing.T) {
	spaces := map[UUID]uuid.UUID{
		NamespaceDNS:  uuid.NameSpaceDNS,
		NamespaceURL:  uuid.NameSpaceURL,
		NamespaceOID:  uuid.NameSpaceOID,
		NamespaceX500: uuid.NameSpaceX500,
	}
	for ours, theirs := range spaces {
		for _, name := range []string{"", "a", "example.com", "www.widgets.com"} {
			assert.Equal(t, UUID(uuid.NewMD5(theirs, []byte(name))), NewMD5(ours, []byte(name)))
			assert.Equal(t, UUID(uuid.NewSHA1(theirs, []byte(name))), NewSHA1(ours, []byte(name)))
		}
	}
}

func TestNameBased_InvalidNamespace(t *testing.T) {
	_, err := NewV3("bogus", "example.com")
	assert.ErrorIs(t, err, ErrInvalidNamespace)

	_, err = NewV5("bogus", "example.com")
	assert.ErrorIs(t, err, ErrInvalidNamespace)
}
