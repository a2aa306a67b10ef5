package client

import (
	"sync"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// PipelineCache is the client-side ordered pipeline collection kept current
// by share events. OnShared upserts by pipeline id: an existing entry is
// replaced in place, a new one is inserted at the front. N events for the
// same pipeline converge to one entry holding the latest payload.
type PipelineCache struct {
	mu        sync.Mutex
	pipelines []domain.Pipeline
}

func NewPipelineCache() *PipelineCache {
	return &PipelineCache{}
}

// Seed replaces the cache contents with an authoritative list.
func (pc *PipelineCache) Seed(pipelines []domain.Pipeline) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.pipelines = append([]domain.Pipeline(nil), pipelines...)
}

// OnShared applies a share event to the cache.
func (pc *PipelineCache) OnShared(event *domain.ShareEvent) {
	if event == nil {
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	for i, existing := range pc.pipelines {
		if existing.ID == event.Pipeline.ID {
			pc.pipelines[i] = event.Pipeline
			return
		}
	}
	pc.pipelines = append([]domain.Pipeline{event.Pipeline}, pc.pipelines...)
}

// Remove drops a pipeline from the cache.
func (pc *PipelineCache) Remove(pipelineID uuid.UUID) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for i, existing := range pc.pipelines {
		if existing.ID == pipelineID {
			pc.pipelines = append(pc.pipelines[:i], pc.pipelines[i+1:]...)
			return
		}
	}
}

// Pipelines returns a snapshot of the cache in display order.
func (pc *PipelineCache) Pipelines() []domain.Pipeline {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return append([]domain.Pipeline(nil), pc.pipelines...)
}
