// Package planner turns discovered media files into rename plans.
//
//   - Policy: the user's choice for already-prefixed files (types.go)
//   - Select: the applying set for a policy (planner.go)
//   - BuildPlans: collision-free prefixed target names (planner.go)
package planner
