package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       Kind
	}{
		{"instance id", "i-0abc123", KindInstanceID},
		{"legacy id prefix", "id-0abc123", KindInstanceID},
		{"public ipv4", "203.0.113.5", KindPublicIP},
		{"public ipv6", "2001:db8::1", KindPublicIP},
		{"private ipv4", "10.0.0.5", KindPrivateIP},
		{"private ipv4 172 range", "172.16.4.20", KindPrivateIP},
		{"private ipv4 192 range", "192.168.1.1", KindPrivateIP},
		{"loopback", "127.0.0.1", KindPrivateIP},
		{"link local", "169.254.169.254", KindPrivateIP},
		{"ipv6 ula", "fd00::1", KindPrivateIP},
		{"public dns", "ec2-203-0-113-5.compute.amazonaws.com", KindPublicDNS},
		{"private dns", "ip-10-0-0-5.eu-west-1.compute.internal", KindPrivateDNS},
		{"tag", "env:prod", KindTag},
		{"name", "webserver01", KindName},
		{"name with dots", "web.example.org", KindName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Classify(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// The instance ID prefix wins over every other rule.
	kind, err := Classify("i-contains:colon")
	require.NoError(t, err)
	assert.Equal(t, KindInstanceID, kind)

	// DNS suffixes win over the tag rule even with a colon present.
	kind, err = Classify("a:b.compute.internal")
	require.NoError(t, err)
	assert.Equal(t, KindPrivateDNS, kind)
}

func TestClassify_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"empty", ""},
		{"two colons", "env:prod:extra"},
		{"many colons", "a:b:c:d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.identifier)
			assert.ErrorIs(t, err, ErrMalformedIdentifier)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "instance-id", KindInstanceID.String())
	assert.Equal(t, "ip-address", KindPublicIP.String())
	assert.Equal(t, "private-ip-address", KindPrivateIP.String())
	assert.Equal(t, "dns-name", KindPublicDNS.String())
	assert.Equal(t, "private-dns-name", KindPrivateDNS.String())
	assert.Equal(t, "tag", KindTag.String())
	assert.Equal(t, "name", KindName.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
