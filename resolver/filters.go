package resolver

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	filterState     = "instance-state-name"
	reservedNameTag = "Name"
	tagFilterPrefix = "tag:"
)

// buildFilters constructs the DescribeInstances filter for kind.
// KindInstanceID never reaches the wire and yields no filter.
func buildFilters(kind Kind, identifier string) []ec2types.Filter {
	var name, value string

	switch kind {
	case KindPublicIP, KindPrivateIP, KindPublicDNS, KindPrivateDNS:
		name, value = kind.String(), identifier
	case KindTag:
		key, tagValue, _ := strings.Cut(identifier, ":")
		name, value = tagFilterPrefix+key, tagValue
	case KindName:
		name, value = tagFilterPrefix+reservedNameTag, identifier
	default:
		return nil
	}

	return []ec2types.Filter{{
		Name:   aws.String(name),
		Values: []string{value},
	}}
}

// withRunningState appends the mandatory running-state constraint.
// A stopped or terminated instance is never a valid resolution target.
func withRunningState(filters []ec2types.Filter) []ec2types.Filter {
	return append(filters, ec2types.Filter{
		Name:   aws.String(filterState),
		Values: []string{string(ec2types.InstanceStateNameRunning)},
	})
}
