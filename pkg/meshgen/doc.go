// Package meshgen builds procedural polygon meshes for simple primitives:
// cube, plane, UV sphere, normalized cube, torus, cylinder, tetrahedron,
// octahedron, icosahedron and dodecahedron.
//
// Generators write into caller-owned Buffers. Each generator resets the
// buffers it is handed and then only appends, so a Buffers value may be
// reused across calls from one goroutine. The package holds no mutable
// state of its own.
//
// # Quads
//
// Quad mode is chosen by Buffers.KeepQuads. With it set, four-sided faces
// are stored in Buffers.Quads; otherwise each quad is split into two triangles on one of its diagonals. The normalized
// cube flips the diagonal in two of the four quadrants of each face, so the
// splits mirror about the face centre. The other generators always split on
// the first-third diagonal.
//
// # Seams
//
// The UV sphere and the cylinder wrap their rings modulo the segment count,
// so no seam point is duplicated. The torus and the normalized cube repeat
// seam points as separate vertices, which leaves them with border edges
// even though they look closed. See Closed.
package meshgen
