package keystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/storage"
)

type memoryBlobStore struct {
	blobs map[string][]byte
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStore) SaveAPIKeyBlob(_ context.Context, provider string, blob []byte) error {
	m.blobs[provider] = blob
	return nil
}

func (m *memoryBlobStore) APIKeyBlob(_ context.Context, provider string) ([]byte, error) {
	blob, ok := m.blobs[provider]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return blob, nil
}

func (m *memoryBlobStore) DeleteAPIKeyBlob(_ context.Context, provider string) error {
	delete(m.blobs, provider)
	return nil
}

func TestKeystore_RoundTrip(t *testing.T) {
	ks := New(newMemoryBlobStore())
	ctx := context.Background()

	require.NoError(t, ks.Store(ctx, "anthropic", "sk-ant-api-key-12345678", "hunter2"))

	key, err := ks.Retrieve(ctx, "anthropic", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-api-key-12345678", key)
}

func TestKeystore_WrongPassphrase(t *testing.T) {
	ks := New(newMemoryBlobStore())
	ctx := context.Background()

	require.NoError(t, ks.Store(ctx, "anthropic", "sk-ant-api-key-12345678", "hunter2"))

	_, err := ks.Retrieve(ctx, "anthropic", "wrong")
	var decErr *DecryptError
	assert.ErrorAs(t, err, &decErr)
}

func TestKeystore_TamperedBlob(t *testing.T) {
	store := newMemoryBlobStore()
	ks := New(store)
	ctx := context.Background()

	require.NoError(t, ks.Store(ctx, "anthropic", "sk-ant-api-key-12345678", "hunter2"))
	blob := store.blobs["anthropic"]
	blob[len(blob)-1] ^= 0xff

	_, err := ks.Retrieve(ctx, "anthropic", "hunter2")
	var decErr *DecryptError
	assert.ErrorAs(t, err, &decErr)
}

func TestKeystore_MissingKey(t *testing.T) {
	ks := New(newMemoryBlobStore())
	ctx := context.Background()

	_, err := ks.Retrieve(ctx, "anthropic", "hunter2")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.False(t, ks.Has(ctx, "anthropic"))
}

func TestKeystore_HasAndDelete(t *testing.T) {
	ks := New(newMemoryBlobStore())
	ctx := context.Background()

	require.NoError(t, ks.Store(ctx, "anthropic", "sk-ant-api-key-12345678", "hunter2"))
	assert.True(t, ks.Has(ctx, "anthropic"))

	require.NoError(t, ks.Delete(ctx, "anthropic"))
	assert.False(t, ks.Has(ctx, "anthropic"))
}

func TestValidateAPIKey(t *testing.T) {
	assert.True(t, ValidateAPIKey("sk-ant-api-key-12345678", "anthropic"))
	assert.False(t, ValidateAPIKey("sk-proj-not-anthropic-key", "anthropic"))
	assert.False(t, ValidateAPIKey("sk-ant-short", "anthropic"))
	assert.True(t, ValidateAPIKey("AIzaSyExampleGeminiKey123", "gemini"))
	assert.False(t, ValidateAPIKey("short", "gemini"))
}
