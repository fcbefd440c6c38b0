// Package economics implements the TI vs SI cost model used by the simulator.
//
// TI (technical cost) is what the automation costs in API tokens. SI (system
// cost) adds the human rework paid for every ticket the automation fails to
// resolve. Compute is a pure function over CostInputs; presets and the
// trade-off assessment are host-level policy layered on top of it.
package economics
