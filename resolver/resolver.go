package resolver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// EC2API defines the single EC2 operation the resolver uses.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// Resolver resolves identifier strings to running instance IDs using an
// externally constructed, already-authenticated EC2 client. It holds no
// state beyond its collaborators and is safe for concurrent use.
type Resolver struct {
	client EC2API
	logger zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for candidate traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver around the given client.
func New(client EC2API, opts ...Option) (*Resolver, error) {
	if client == nil {
		return nil, ErrNoClient
	}

	r := &Resolver{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve turns an identifier into the ID of the running instance it
// refers to. An instance ID is returned as-is with no network call; every
// other kind costs exactly one DescribeInstances call. It returns "" with
// a nil error when no running instance matches.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (string, error) {
	if r.client == nil {
		return "", ErrNoClient
	}

	r.logger.Debug().Str("identifier", identifier).Msg("resolving instance identifier")

	kind, err := Classify(identifier)
	if err != nil {
		return "", err
	}

	if kind == KindInstanceID {
		return identifier, nil
	}

	return r.query(ctx, kind, identifier)
}

// query issues the single filtered DescribeInstances call for kind.
func (r *Resolver) query(ctx context.Context, kind Kind, identifier string) (string, error) {
	filters := withRunningState(buildFilters(kind, identifier))

	output, err := r.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{Filters: filters})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			r.logger.Debug().
				Str("code", apiErr.ErrorCode()).
				Str("message", apiErr.ErrorMessage()).
				Msg("describe instances failed")
		}
		return "", fmt.Errorf("%w: %w", ErrConnection, err)
	}

	var matches []string
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			id := aws.ToString(instance.InstanceId)
			if id == "" {
				continue
			}
			r.logger.Debug().
				Str("instance_id", id).
				Stringer("kind", kind).
				Msg("matching instance")
			matches = append(matches, id)
		}
	}

	r.logger.Debug().Int("count", len(matches)).Msg("matching instances found")

	if len(matches) == 0 {
		return "", nil
	}

	// DescribeInstances gives no ordering guarantee, so pick the
	// lexicographically smallest ID to keep resolution deterministic.
	return slices.Min(matches), nil
}
