// Package gating is type-checked by TestCapabilityGating with one extra
// overlaid file per case.
package gating
