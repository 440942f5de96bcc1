package blob

import (
	"context"
	"testing"

	"canteen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_Upload(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStore(bucket, "https://cdn.example.com/menu/")

	url, err := store.Upload(ctx, "items/wrap 1.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/menu/items/wrap%201.png", url)

	data, err := bucket.ReadAll(ctx, "items/wrap 1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "items/wrap 1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBucketStore_UploadWithoutBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	url, err := NewBucketStore(bucket, "").Upload(context.Background(), "a.jpg", []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/a.jpg", url)
}

func TestBucketStore_Read(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStore(bucket, "")
	_, err := store.Upload(ctx, "menu/item-1/a.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	data, contentType, err := store.Read(ctx, "menu/item-1/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)

	_, _, err = store.Read(ctx, "menu/item-1/missing.png")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}
