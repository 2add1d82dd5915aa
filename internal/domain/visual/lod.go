package visual

import "sort"

// GenerateLODLevels produces numLevels simplified meshes and their switch
// distances. Reduction per level follows the fixed ladder 50%, 25%, 10%,
// then 5% for every further level; switch distances grow with the square of
// the level scaled by twice the mesh size.
func GenerateLODLevels(mesh *MeshDefinition, numLevels int) ([]MeshDefinition, []float32) {
	levels := make([]MeshDefinition, 0, numLevels)
	distances := make([]float32, 0, numLevels)

	baseTriangles := mesh.TriangleCount()
	baseDistance := meshSize(mesh) * 2

	for level := 1; level <= numLevels; level++ {
		var reduction float32
		switch level {
		case 1:
			reduction = 0.5
		case 2:
			reduction = 0.25
		case 3:
			reduction = 0.10
		default:
			reduction = 0.05
		}

		target := int(float32(baseTriangles) * reduction)
		if target < 1 {
			target = 1
		}

		levels = append(levels, SimplifyMesh(mesh, target))
		distances = append(distances, baseDistance*float32(level*level))
	}

	return levels, distances
}

// SimplifyMesh reduces a mesh to at most targetTriangles triangles. Meshes
// already at or below the target are returned as copies. Targets of two or
// fewer triangles collapse to a billboard quad. Otherwise the largest
// triangles by area survive and the vertex array is compacted.
func SimplifyMesh(mesh *MeshDefinition, targetTriangles int) MeshDefinition {
	if mesh.TriangleCount() <= targetTriangles {
		return cloneMesh(mesh)
	}
	if targetTriangles <= 2 {
		return billboardMesh(mesh)
	}
	kept := rankTriangles(mesh, targetTriangles)
	return compactMesh(mesh, kept)
}

// meshSize returns the diagonal of the axis-aligned bounding box, or 1 for
// an empty mesh.
func meshSize(mesh *MeshDefinition) float32 {
	if len(mesh.Vertices) == 0 {
		return 1
	}

	min, max := boundingBox(mesh.Vertices)
	d := vecSub(max, min)
	return vecLength(d)
}

func boundingBox(vertices []Vec3) (min, max Vec3) {
	min, max = vertices[0], vertices[0]
	for _, v := range vertices {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// billboardMesh builds a quad sized to the mesh's bounding box. It keeps
// the source color, material, and texture so a far-away silhouette still
// reads as the same object.
func billboardMesh(mesh *MeshDefinition) MeshDefinition {
	if len(mesh.Vertices) == 0 {
		return cloneMesh(mesh)
	}

	min, max := boundingBox(mesh.Vertices)
	centerX := (min[0] + max[0]) / 2
	centerY := (min[1] + max[1]) / 2
	centerZ := (min[2] + max[2]) / 2
	halfWidth := (max[0] - min[0]) / 2
	halfHeight := (max[1] - min[1]) / 2

	out := MeshDefinition{
		Vertices: []Vec3{
			{centerX - halfWidth, centerY - halfHeight, centerZ},
			{centerX + halfWidth, centerY - halfHeight, centerZ},
			{centerX + halfWidth, centerY + halfHeight, centerZ},
			{centerX - halfWidth, centerY + halfHeight, centerZ},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Normals: []Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		UVs:     [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Color:   mesh.Color,
	}
	if mesh.Material != nil {
		mat := *mesh.Material
		out.Material = &mat
	}
	if mesh.TexturePath != nil {
		path := *mesh.TexturePath
		out.TexturePath = &path
	}
	return out
}

// rankTriangles returns the indices of the target largest triangles by
// area, ties broken by original order, result in original order.
func rankTriangles(mesh *MeshDefinition, target int) []int {
	count := mesh.TriangleCount()
	if count <= target {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	type scored struct {
		index int
		area  float32
	}
	scores := make([]scored, count)
	for i := 0; i < count; i++ {
		scores[i] = scored{index: i, area: triangleArea(mesh, i)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].area > scores[j].area })

	kept := make([]int, target)
	for i := 0; i < target; i++ {
		kept[i] = scores[i].index
	}
	sort.Ints(kept)
	return kept
}

func triangleArea(mesh *MeshDefinition, triangleIndex int) float32 {
	i0 := mesh.Indices[triangleIndex*3]
	i1 := mesh.Indices[triangleIndex*3+1]
	i2 := mesh.Indices[triangleIndex*3+2]

	v0 := mesh.Vertices[i0]
	edge1 := vecSub(mesh.Vertices[i1], v0)
	edge2 := vecSub(mesh.Vertices[i2], v0)
	return vecLength(vecCross(edge1, edge2)) / 2
}

// compactMesh rebuilds a mesh from the selected triangles, dropping every
// vertex nothing references and remapping indices.
func compactMesh(mesh *MeshDefinition, triangles []int) MeshDefinition {
	used := make(map[uint32]bool)
	for _, tri := range triangles {
		used[mesh.Indices[tri*3]] = true
		used[mesh.Indices[tri*3+1]] = true
		used[mesh.Indices[tri*3+2]] = true
	}

	oldIndices := make([]int, 0, len(used))
	for idx := range used {
		oldIndices = append(oldIndices, int(idx))
	}
	sort.Ints(oldIndices)

	remap := make(map[uint32]uint32, len(oldIndices))
	out := MeshDefinition{
		Vertices: make([]Vec3, 0, len(oldIndices)),
		Color:    mesh.Color,
	}
	if mesh.Normals != nil {
		out.Normals = make([]Vec3, 0, len(oldIndices))
	}
	if mesh.UVs != nil {
		out.UVs = make([][2]float32, 0, len(oldIndices))
	}

	for newIdx, oldIdx := range oldIndices {
		remap[uint32(oldIdx)] = uint32(newIdx)
		out.Vertices = append(out.Vertices, mesh.Vertices[oldIdx])
		if mesh.Normals != nil && oldIdx < len(mesh.Normals) {
			out.Normals = append(out.Normals, mesh.Normals[oldIdx])
		}
		if mesh.UVs != nil && oldIdx < len(mesh.UVs) {
			out.UVs = append(out.UVs, mesh.UVs[oldIdx])
		}
	}

	out.Indices = make([]uint32, 0, len(triangles)*3)
	for _, tri := range triangles {
		out.Indices = append(out.Indices,
			remap[mesh.Indices[tri*3]],
			remap[mesh.Indices[tri*3+1]],
			remap[mesh.Indices[tri*3+2]],
		)
	}

	if mesh.Material != nil {
		mat := *mesh.Material
		out.Material = &mat
	}
	if mesh.TexturePath != nil {
		path := *mesh.TexturePath
		out.TexturePath = &path
	}
	return out
}
