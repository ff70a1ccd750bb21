// Package resolver turns user-supplied identifiers - instance IDs, IP
// addresses, DNS names, tags or Name tags - into running EC2 instance IDs.
package resolver

import (
	"fmt"
	"net/netip"
	"strings"
)

// Kind classifies what an identifier string refers to.
type Kind int

const (
	KindInstanceID Kind = iota
	KindPublicIP
	KindPrivateIP
	KindPublicDNS
	KindPrivateDNS
	KindTag
	KindName
)

// String returns the kind as the EC2 filter vocabulary spells it.
func (k Kind) String() string {
	switch k {
	case KindInstanceID:
		return "instance-id"
	case KindPublicIP:
		return "ip-address"
	case KindPrivateIP:
		return "private-ip-address"
	case KindPublicDNS:
		return "dns-name"
	case KindPrivateDNS:
		return "private-dns-name"
	case KindTag:
		return "tag"
	case KindName:
		return "name"
	default:
		return "unknown"
	}
}

// Classify maps an identifier string to exactly one Kind. It is pure and
// performs no I/O. Rules apply in priority order, first match wins:
// instance ID prefix, IP address, DNS suffix, tag, then Name tag.
func Classify(identifier string) (Kind, error) {
	if identifier == "" {
		return 0, fmt.Errorf("%w: empty identifier", ErrMalformedIdentifier)
	}

	// The "id-" prefix predates the current instance ID scheme; kept so
	// old inputs keep resolving without a lookup.
	if strings.HasPrefix(identifier, "i-") || strings.HasPrefix(identifier, "id-") {
		return KindInstanceID, nil
	}

	if addr, err := netip.ParseAddr(identifier); err == nil {
		if isPrivateAddr(addr) {
			return KindPrivateIP, nil
		}
		return KindPublicIP, nil
	}

	if strings.HasSuffix(identifier, "compute.amazonaws.com") {
		return KindPublicDNS, nil
	}
	if strings.HasSuffix(identifier, "compute.internal") {
		return KindPrivateDNS, nil
	}

	switch strings.Count(identifier, ":") {
	case 0:
		return KindName, nil
	case 1:
		return KindTag, nil
	default:
		return 0, fmt.Errorf("%w: %q contains more than one colon", ErrMalformedIdentifier, identifier)
	}
}

// isPrivateAddr reports whether addr can never be a public EC2 address.
func isPrivateAddr(addr netip.Addr) bool {
	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified()
}
