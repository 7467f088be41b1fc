// Package kernel contains shared value objects used across the domain model:
// UUID identities and geographic points. All types are immutable and must be
// created through their constructor functions; zero values fail validation.
package kernel
