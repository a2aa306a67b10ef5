package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeshare/domain"
)

func sharedEvent(p domain.Pipeline) *domain.ShareEvent {
	return &domain.ShareEvent{Key: "user@acme.com", Pipeline: p}
}

func TestPipelineCache_OnSharedInsertsNewAtFront(t *testing.T) {
	cache := NewPipelineCache()
	existing := domain.Pipeline{ID: uuid.New(), Name: "Existing"}
	cache.Seed([]domain.Pipeline{existing})

	fresh := domain.Pipeline{ID: uuid.New(), Name: "Just Shared"}
	cache.OnShared(sharedEvent(fresh))

	pipelines := cache.Pipelines()
	require.Len(t, pipelines, 2)
	assert.Equal(t, fresh.ID, pipelines[0].ID)
	assert.Equal(t, existing.ID, pipelines[1].ID)
}

func TestPipelineCache_RepeatedSharesConvergeToOneEntry(t *testing.T) {
	cache := NewPipelineCache()
	id := uuid.New()

	cache.OnShared(sharedEvent(domain.Pipeline{ID: id, Name: "Q3 Renewals", Description: "first pass"}))
	cache.OnShared(sharedEvent(domain.Pipeline{ID: id, Name: "Q3 Renewals", Description: "second pass"}))

	pipelines := cache.Pipelines()
	require.Len(t, pipelines, 1)
	assert.Equal(t, "second pass", pipelines[0].Description, "later payload wins")
}

func TestPipelineCache_OnSharedReplacesInPlace(t *testing.T) {
	cache := NewPipelineCache()
	first := domain.Pipeline{ID: uuid.New(), Name: "First"}
	second := domain.Pipeline{ID: uuid.New(), Name: "Second"}
	cache.Seed([]domain.Pipeline{first, second})

	updated := second
	updated.Description = "updated"
	cache.OnShared(sharedEvent(updated))

	pipelines := cache.Pipelines()
	require.Len(t, pipelines, 2)
	assert.Equal(t, first.ID, pipelines[0].ID, "in-place update must not reorder the list")
	assert.Equal(t, "updated", pipelines[1].Description)
}

func TestPipelineCache_SeedReplacesContents(t *testing.T) {
	cache := NewPipelineCache()
	cache.OnShared(sharedEvent(domain.Pipeline{ID: uuid.New(), Name: "Old"}))

	replacement := []domain.Pipeline{{ID: uuid.New(), Name: "Authoritative"}}
	cache.Seed(replacement)

	pipelines := cache.Pipelines()
	require.Len(t, pipelines, 1)
	assert.Equal(t, "Authoritative", pipelines[0].Name)

	// The snapshot is a copy; mutating it leaves the cache alone.
	pipelines[0].Name = "Mutated"
	assert.Equal(t, "Authoritative", cache.Pipelines()[0].Name)
}

func TestPipelineCache_Remove(t *testing.T) {
	cache := NewPipelineCache()
	keep := domain.Pipeline{ID: uuid.New(), Name: "Keep"}
	drop := domain.Pipeline{ID: uuid.New(), Name: "Drop"}
	cache.Seed([]domain.Pipeline{keep, drop})

	cache.Remove(drop.ID)
	cache.Remove(uuid.New()) // unknown id is a no-op

	pipelines := cache.Pipelines()
	require.Len(t, pipelines, 1)
	assert.Equal(t, keep.ID, pipelines[0].ID)
}

func TestPipelineCache_NilEventIgnored(t *testing.T) {
	cache := NewPipelineCache()
	cache.OnShared(nil)
	assert.Empty(t, cache.Pipelines())
}
