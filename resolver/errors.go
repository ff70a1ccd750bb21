package resolver

import "errors"

// Sentinel errors returned by the resolver. Callers match them with
// errors.Is; the underlying SDK error stays attached through wrapping.
var (
	// ErrNoClient means Resolve was called without an EC2 client.
	ErrNoClient = errors.New("ec2 client is not initialized")

	// ErrMalformedIdentifier means the identifier cannot be classified.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrConnection means the DescribeInstances call itself failed.
	ErrConnection = errors.New("could not query the ec2 api")
)
