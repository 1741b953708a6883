package secrets

import (
	"context"
	"regexp"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
)

const (
	ErrAccessSecret errors.Code = "access secret"
)

var versionRefPattern = regexp.MustCompile(`^projects/[^/]+/secrets/[^/]+/versions/[^/]+$`)

// IsVersionRef reports whether value names a Secret Manager secret version.
func IsVersionRef(value string) bool {
	return versionRefPattern.MatchString(value)
}

// Resolver turns configuration values into secrets. Plain values pass
// through unchanged; Secret Manager version references are fetched remotely.
type Resolver interface {
	Resolve(ctx context.Context, value string) (string, error)
	Close() error
}

type versionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

type resolverImpl struct {
	logger *log.Logger

	mu       sync.Mutex
	accessor versionAccessor
	// client is created on first reference so plain-env deployments
	// never need GCP credentials
	newAccessor func(ctx context.Context) (versionAccessor, error)
}

func NewResolver(logger *log.Logger) Resolver {
	return &resolverImpl{
		logger: logger,
		newAccessor: func(ctx context.Context) (versionAccessor, error) {
			return secretmanager.NewClient(ctx)
		},
	}
}

func (r *resolverImpl) Resolve(ctx context.Context, value string) (string, error) {
	if !IsVersionRef(value) {
		return value, nil
	}

	accessor, err := r.client(ctx)
	if err != nil {
		return "", errors.Wrap(ErrAccessSecret, err, "create secret manager client")
	}

	resp, err := accessor.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: value,
	})
	if err != nil {
		return "", errors.Wrapf(ErrAccessSecret, err, "access secret version %q", value)
	}

	r.logger.Info("Resolved secret reference",
		log.String("name", value),
		log.Int("length", len(resp.GetPayload().GetData())))

	return string(resp.GetPayload().GetData()), nil
}

func (r *resolverImpl) client(ctx context.Context) (versionAccessor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.accessor != nil {
		return r.accessor, nil
	}
	accessor, err := r.newAccessor(ctx)
	if err != nil {
		return nil, err
	}
	r.accessor = accessor
	return accessor, nil
}

func (r *resolverImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.accessor == nil {
		return nil
	}
	err := r.accessor.Close()
	r.accessor = nil
	return err
}
