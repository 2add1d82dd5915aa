package visual

import (
	"fmt"
	"sort"
)

// EstimateMeshMemory returns the GPU footprint of a mesh in bytes:
// 12 per vertex position, 4 per index, 12 per normal, 8 per UV.
func EstimateMeshMemory(mesh *MeshDefinition) int {
	bytes := len(mesh.Vertices)*12 + len(mesh.Indices)*4
	bytes += len(mesh.Normals) * 12
	bytes += len(mesh.UVs) * 8
	return bytes
}

// AutoTuneLODDistances adjusts LOD switch distances toward a frame rate
// target. Below target the distances shrink so lower LODs kick in sooner;
// well above target (ratio > 1.2) they grow so detail survives longer.
// Rate in [0, 1] controls aggressiveness. Non-positive FPS inputs return
// the distances unchanged.
func AutoTuneLODDistances(distances []float32, targetFPS, currentFPS, rate float32) []float32 {
	out := append([]float32(nil), distances...)
	if len(out) == 0 || targetFPS <= 0 || currentFPS <= 0 {
		return out
	}

	fpsRatio := currentFPS / targetFPS
	rate = clamp32(rate, 0, 1)

	for i, distance := range out {
		switch {
		case fpsRatio < 1:
			out[i] = distance * (1 - rate*(1-fpsRatio))
		case fpsRatio > 1.2:
			out[i] = distance * (1 + rate*(fpsRatio-1)*0.5)
		}
	}
	return out
}

// MemoryStrategy recommends how to hold meshes within budget.
type MemoryStrategy string

const (
	// StrategyKeepAll keeps every mesh resident.
	StrategyKeepAll MemoryStrategy = "keep_all"
	// StrategyDistanceBased unloads meshes past a distance threshold.
	StrategyDistanceBased MemoryStrategy = "distance_based"
	// StrategyLRUCache keeps a bounded recently-used set.
	StrategyLRUCache MemoryStrategy = "lru_cache"
	// StrategyStreaming loads meshes on demand.
	StrategyStreaming MemoryStrategy = "streaming"
)

// MemoryConfig bounds mesh memory and parameterizes the strategies.
type MemoryConfig struct {
	// MaxMeshMemory is the budget in bytes.
	MaxMeshMemory int `json:"max_mesh_memory"`

	// UnloadDistance is the threshold for distance-based unloading.
	UnloadDistance float32 `json:"unload_distance"`

	// CacheSize bounds the LRU strategy.
	CacheSize int `json:"cache_size"`
}

// DefaultMemoryConfig returns a 256 MB budget with a thousand-entry cache.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		MaxMeshMemory:  256 * 1024 * 1024,
		UnloadDistance: 100,
		CacheSize:      1000,
	}
}

// AnalyzeMemory recommends a strategy for the mesh set and estimates the
// bytes it could save. Within budget keeps everything; severe overflow
// (more than half the budget) streams; many small meshes suit an LRU cache;
// moderate overflow unloads by distance.
func AnalyzeMemory(meshes []MeshDefinition, cfg MemoryConfig) (MemoryStrategy, int) {
	total := 0
	for i := range meshes {
		total += EstimateMeshMemory(&meshes[i])
	}

	if total <= cfg.MaxMeshMemory {
		return StrategyKeepAll, 0
	}

	overflow := total - cfg.MaxMeshMemory

	var strategy MemoryStrategy
	switch {
	case overflow > cfg.MaxMeshMemory/2:
		strategy = StrategyStreaming
	case len(meshes) > cfg.CacheSize*2:
		strategy = StrategyLRUCache
	default:
		strategy = StrategyDistanceBased
	}

	savings := overflow
	if half := total / 2; savings > half {
		savings = half
	}
	return strategy, savings
}

// BatchingConfig controls how meshes are grouped for draw call batching.
type BatchingConfig struct {
	// MaxVerticesPerBatch caps batch size at the 16-bit index limit.
	MaxVerticesPerBatch int `json:"max_vertices_per_batch"`

	MaxInstancesPerBatch int `json:"max_instances_per_batch"`

	SortByMaterial bool `json:"sort_by_material"`
	SortByTexture  bool `json:"sort_by_texture"`
}

// DefaultBatchingConfig sorts by both material and texture.
func DefaultBatchingConfig() BatchingConfig {
	return BatchingConfig{
		MaxVerticesPerBatch:  65536,
		MaxInstancesPerBatch: 1024,
		SortByMaterial:       true,
		SortByTexture:        true,
	}
}

// MeshBatch aggregates meshes that share a material and texture and can be
// drawn together.
type MeshBatch struct {
	MaterialKey    string
	TextureKey     string
	TotalVertices  int
	TotalTriangles int
	MeshCount      int
}

// AnalyzeBatching groups meshes by material and texture key, then sorts
// batches by whichever keys the config enables.
func AnalyzeBatching(meshes []MeshDefinition, cfg BatchingConfig) []MeshBatch {
	type batchKey struct {
		material string
		texture  string
	}

	batches := make(map[batchKey]*MeshBatch)
	for i := range meshes {
		mesh := &meshes[i]
		key := batchKey{material: materialKey(mesh), texture: textureKey(mesh)}

		batch, ok := batches[key]
		if !ok {
			batch = &MeshBatch{MaterialKey: key.material, TextureKey: key.texture}
			batches[key] = batch
		}
		batch.TotalVertices += len(mesh.Vertices)
		batch.TotalTriangles += mesh.TriangleCount()
		batch.MeshCount++
	}

	out := make([]MeshBatch, 0, len(batches))
	for _, batch := range batches {
		out = append(out, *batch)
	}

	sort.Slice(out, func(i, j int) bool {
		if cfg.SortByMaterial && out[i].MaterialKey != out[j].MaterialKey {
			return out[i].MaterialKey < out[j].MaterialKey
		}
		if cfg.SortByTexture && out[i].TextureKey != out[j].TextureKey {
			return out[i].TextureKey < out[j].TextureKey
		}
		return out[i].MaterialKey < out[j].MaterialKey
	})
	return out
}

func materialKey(mesh *MeshDefinition) string {
	if mesh.Material == nil {
		return "default"
	}
	m := mesh.Material
	emissive := [3]float32{}
	if m.Emissive != nil {
		emissive = *m.Emissive
	}
	return fmt.Sprintf("%v|%g|%g|%v|%s", m.BaseColor, m.Metallic, m.Roughness, emissive, m.AlphaMode)
}

func textureKey(mesh *MeshDefinition) string {
	if mesh.TexturePath == nil {
		return "none"
	}
	return *mesh.TexturePath
}
