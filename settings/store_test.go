package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_content_generator/storage"
)

func fullRecord() Record {
	return Record{
		Credential:            "sk-test-0001",
		Language:              "pt-br",
		Tone:                  ToneConversational,
		WordCount:             1200,
		H1TitlePrompt:         "Catchy title",
		H2Count:               0,
		H3Count:               4,
		IncludeFAQ:            true,
		CustomPrompt:          "Write for beginners.",
		MetaDescriptionPrompt: "Under 160 chars",
		SlugPrompt:            "kebab-case",
		FocusKeywordPrompt:    "one keyword",
		InternalLinkCount:     0,
		ExternalLinkCount:     5,
		ImageAltTextPrompt:    "Describe the image",
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(storage.NewMemory())
	ctx := context.Background()

	want := fullRecord()
	require.NoError(t, store.Save(ctx, want))
	assert.Equal(t, want, store.Load(ctx))
}

func TestStore_LoadAbsentReturnsDefaults(t *testing.T) {
	store := NewStore(storage.NewMemory())
	got := store.Load(context.Background())

	assert.Equal(t, Defaults(), got)
	assert.Equal(t, Language("en"), got.Language)
	assert.Equal(t, ToneFormal, got.Tone)
	assert.Equal(t, 500, got.WordCount)
	assert.Equal(t, 3, got.H2Count)
	assert.Equal(t, 2, got.H3Count)
	assert.False(t, got.IncludeFAQ)
	assert.Equal(t, 2, got.InternalLinkCount)
	assert.Equal(t, 1, got.ExternalLinkCount)
	assert.Empty(t, got.Credential)
	assert.Empty(t, got.CustomPrompt)
}

func TestStore_LoadCorruptReturnsDefaults(t *testing.T) {
	for _, raw := range []string{
		"{not json",
		"[]",
		`"just a string"`,
		`{"wordCount":"eight hundred","apiKey":"k"}`,
		"",
	} {
		mem := storage.NewMemory()
		require.NoError(t, mem.Put(context.Background(), StorageKey, raw))
		got := NewStore(mem).Load(context.Background())
		assert.Equal(t, Defaults(), got, "raw=%q", raw)
	}
}

type failingBackend struct{ storage.Backend }

func (failingBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func TestStore_LoadBackendErrorReturnsDefaults(t *testing.T) {
	store := NewStore(failingBackend{storage.NewMemory()})
	assert.Equal(t, Defaults(), store.Load(context.Background()))
}

func TestStore_PartialRecordFillsDefaults(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(context.Background(), StorageKey,
		`{"apiKey":"k123","wordCount":800,"unknownField":true}`))

	got := NewStore(mem).Load(context.Background())
	want := Defaults()
	want.Credential = "k123"
	want.WordCount = 800
	assert.Equal(t, want, got)
}

func TestStore_InvalidStoredFieldsFallBack(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(context.Background(), StorageKey,
		`{"tone":"sarcastic","language":"xx","wordCount":0,"h2Count":-1,"h3Count":7,"externalLinkCount":-3}`))

	got := NewStore(mem).Load(context.Background())
	assert.Equal(t, ToneFormal, got.Tone)
	assert.Equal(t, Language("en"), got.Language)
	assert.Equal(t, 500, got.WordCount)
	assert.Equal(t, 3, got.H2Count)
	assert.Equal(t, 7, got.H3Count)
	assert.Equal(t, 1, got.ExternalLinkCount)
}

func TestStore_SaveEmptyCredentialThenLoad(t *testing.T) {
	store := NewStore(storage.NewMemory())
	ctx := context.Background()

	rec := Defaults()
	rec.Credential = "k123"
	rec.WordCount = 800
	require.NoError(t, store.Save(ctx, rec))

	got := store.Load(ctx)
	assert.Equal(t, 800, got.WordCount)
	assert.Equal(t, ToneFormal, got.Tone)
	assert.Equal(t, 3, got.H2Count)
	assert.True(t, got.HasCredential())
}

func TestStore_SaveReplacesWholeRecord(t *testing.T) {
	store := NewStore(storage.NewMemory())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRecord()))
	second := Defaults()
	second.Tone = ToneInformal
	require.NoError(t, store.Save(ctx, second))

	assert.Equal(t, second, store.Load(ctx), "no merge with the previous record")
}

func TestStore_SaveRejectsInvalidWithoutWriting(t *testing.T) {
	mem := storage.NewMemory()
	store := NewStore(mem)
	ctx := context.Background()

	bad := Defaults()
	bad.Tone = "shouty"
	bad.WordCount = 0
	bad.H3Count = -2
	err := store.Save(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tone")
	assert.Contains(t, err.Error(), "wordCount")
	assert.Contains(t, err.Error(), "h3Count")

	_, ok, err := mem.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore(storage.NewMemory())
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, fullRecord()))
	require.NoError(t, store.Reset(ctx))
	assert.Equal(t, Defaults(), store.Load(ctx))
}

func TestMaskCredential(t *testing.T) {
	assert.Equal(t, "", MaskCredential("  "))
	assert.Equal(t, "****", MaskCredential("k123"))
	assert.Equal(t, "********cdef", MaskCredential("sk-0123456789abcdef"))

	r := fullRecord()
	red := r.Redacted()
	assert.NotEqual(t, r.Credential, red.Credential)
	assert.Equal(t, "sk-test-0001", r.Credential, "receiver is not modified")
}
