package visual

// RenderMesh is the GPU-ready form of a mesh definition: triangle list
// topology with positions, normals, per-vertex colors, and optional UVs.
type RenderMesh struct {
	Positions []Vec3
	Normals   []Vec3
	UVs       [][2]float32
	Colors    [][4]float32
	Indices   []uint32
}

// ToRenderMesh converts a mesh definition into render attributes. Authored
// normals are copied verbatim; otherwise flat normals are computed. The base
// color is replicated across every vertex.
func ToRenderMesh(def *MeshDefinition) RenderMesh {
	mesh := RenderMesh{
		Positions: append([]Vec3(nil), def.Vertices...),
		Indices:   append([]uint32(nil), def.Indices...),
	}

	if def.Normals != nil {
		mesh.Normals = append([]Vec3(nil), def.Normals...)
	} else {
		mesh.Normals = FlatNormals(def.Vertices, def.Indices)
	}

	if def.UVs != nil {
		mesh.UVs = append([][2]float32(nil), def.UVs...)
	}

	mesh.Colors = make([][4]float32, len(def.Vertices))
	for i := range mesh.Colors {
		mesh.Colors[i] = def.Color
	}

	return mesh
}

// FlatNormals assigns each vertex the face normal of its triangle, giving a
// faceted look. Shared vertices take the normal of the last triangle that
// references them.
func FlatNormals(vertices []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(vertices))

	for tri := 0; tri+2 < len(indices); tri += 3 {
		i0, i1, i2 := indices[tri], indices[tri+1], indices[tri+2]
		v0 := vertices[i0]
		edge1 := vecSub(vertices[i1], v0)
		edge2 := vecSub(vertices[i2], v0)
		faceNormal := vecNormalize(vecCross(edge1, edge2))

		normals[i0] = faceNormal
		normals[i1] = faceNormal
		normals[i2] = faceNormal
	}

	return normals
}

// SmoothNormals averages the face normals of every triangle sharing a
// vertex, producing Gouraud-style shading. Callers opt in; ToRenderMesh
// defaults to flat.
func SmoothNormals(vertices []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(vertices))

	for tri := 0; tri+2 < len(indices); tri += 3 {
		i0, i1, i2 := indices[tri], indices[tri+1], indices[tri+2]
		v0 := vertices[i0]
		edge1 := vecSub(vertices[i1], v0)
		edge2 := vecSub(vertices[i2], v0)
		faceNormal := vecNormalize(vecCross(edge1, edge2))

		normals[i0] = vecAdd(normals[i0], faceNormal)
		normals[i1] = vecAdd(normals[i1], faceNormal)
		normals[i2] = vecAdd(normals[i2], faceNormal)
	}

	for i := range normals {
		normals[i] = vecNormalize(normals[i])
	}

	return normals
}
