// Package imagegen turns structured travel-content fields into an image
// generation prompt and drives the local diffusion backends. Prompt synthesis
// is pure and deterministic; backend selection handles mode fallback, device
// aware size clamping, and an optional refinement pass that soft-fails back
// to the unrefined result.
package imagegen
