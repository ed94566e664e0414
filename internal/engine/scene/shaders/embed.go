// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CreatureVertexShader deforms the swimming creatures.
//
//go:embed creature.vert
var CreatureVertexShader string

// CreatureFragmentShader lights vertex-colored creatures under the moon.
//
//go:embed creature.frag
var CreatureFragmentShader string

// BoatVertexShader is the vertex shader for the textured boat.
//
//go:embed boat.vert
var BoatVertexShader string

// BoatFragmentShader is the fragment shader for the textured boat.
//
//go:embed boat.frag
var BoatFragmentShader string

// WaterVertexShader is the vertex shader for the ocean plane.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader shades the ocean with planar and sky reflections.
//
//go:embed water.frag
var WaterFragmentShader string

//go:embed skybox.vert
var SkyboxVertexShader string

//go:embed skybox.frag
var SkyboxFragmentShader string
