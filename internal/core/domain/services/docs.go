// Package services contains domain services that coordinate logic spanning
// multiple aggregates. The round assembler builds a delivery round out of a
// claimed order or suggestion, keeping the cross-aggregate rules (readiness,
// snapshotting, linkage) in one place instead of spreading them across
// command handlers.
package services
