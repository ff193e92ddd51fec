package fastuuid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNamespace(t *testing.T) {
	tests := []struct {
		token string
		want  UUID
	}{
		{TokenDNS, NamespaceDNS},
		{TokenURL, NamespaceURL},
		{TokenOID, NamespaceOID},
		{TokenX500, NamespaceX500},
		{NamespaceDNSString, NamespaceDNS},
		{"6BA7B811-9DAD-11D1-80B4-00C04FD430C8", NamespaceURL},
		{sampleString, sampleUUID},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ResolveNamespace(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNamespace_URLMatchesLiteral(t *testing.T) {
	resolved, err := ResolveNamespace("NAMESPACE_URL")
	require.NoError(t, err)
	parsed, err := Parse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, parsed, resolved)
}

func TestResolveNamespace_Invalid(t *testing.T) {
	for _, token := range []string{"", "namespace_dns", "NAMESPACE_dns", "DNS", "not-a-uuid", "6ba7b8109dad11d180b400c04fd430c8"} {
		t.Run(token, func(t *testing.T) {
			got, err := ResolveNamespace(token)
			require.Error(t, err)
			assert.Equal(t, Nil, got)
			assert.ErrorIs(t, err, ErrInvalidNamespace)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			var nerr *NamespaceError
			require.True(t, errors.As(err, &nerr))
			assert.Equal(t, token, nerr.Token)

			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}

func TestNamespaceConstants(t *testing.T) {
	assert.Equal(t, uuid.NameSpaceDNS.String(), NamespaceDNSString)
	assert.Equal(t, uuid.NameSpaceURL.String(), NamespaceURLString)
	assert.Equal(t, uuid.NameSpaceOID.String(), NamespaceOIDString)
	assert.Equal(t, uuid.NameSpaceX500.String(), NamespaceX500String)

	assert.Equal(t, NamespaceDNSString, NamespaceDNS.String())
	assert.Equal(t, NamespaceX500String, NamespaceX500.String())
}
