// Package score ranks listings for a user by blending normalized
// behavioral, geographic, and temporal signals into a single score.
package score
