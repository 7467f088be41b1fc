// Package round models the driver-owned delivery round aggregate. A round is
// created at claim time, either from a single order or from a claimed
// planner suggestion, and owns an ordered list of Stops. The aggregate
// enforces the lifecycle rules: stops are capped, sequenced densely from 1,
// delivered strictly in order, and a round only moves ready → in progress →
// completed. Releasing is handled at the use-case level because it deletes
// the aggregate and compensates across the planner boundary.
package round
