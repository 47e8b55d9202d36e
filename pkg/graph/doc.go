// Package graph defines the scene graph for facet.
// The scene graph is an immutable DAG of shapes, transforms and groups
// produced by evaluating a scene script.
package graph
