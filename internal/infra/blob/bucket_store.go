// Package blob stores menu images in a gocloud bucket.
package blob

import (
	"context"
	"net/url"
	"strings"

	"canteen/config"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

type bucketStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBucketStore wraps an opened bucket. Uploaded objects are addressed as baseURL/key.
func NewBucketStore(bucket *blob.Bucket, baseURL string) service.BlobStore {
	return &bucketStore{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
}

// New opens the bucket named by blob.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStore, error) {
	bucketURL, baseURL := defaultBucketURL, ""
	if params.Config.Blob != nil {
		if params.Config.Blob.BucketURL != "" {
			bucketURL = params.Config.Blob.BucketURL
		}
		baseURL = params.Config.Blob.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket, baseURL), nil
}

// Upload writes data under key and returns its public URL.
func (s *bucketStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if s.baseURL == "" {
		return "/" + key, nil
	}

	return s.baseURL + "/" + escapeKey(key), nil
}

// Read returns the object under key and the content type it was written with.
func (s *bucketStore) Read(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.WithStack(service.ErrBlobNotFound)
		}

		return nil, "", errors.Wrapf(err, "failed to stat object %s", key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read object %s", key)
	}

	return data, attrs.ContentType, nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return strings.Join(parts, "/")
}
