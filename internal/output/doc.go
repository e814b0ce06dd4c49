// Package output renders AI responses in the supported display
// formats: markdown (the default), plain text, and JSON.
package output
