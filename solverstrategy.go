package pic3d

// Strategy is the field-solver contract each use case implements: how to
// seed the node grid once at start-up, and how to advance it one cycle.
// The step driver holds exactly one Strategy for the whole run and never
// branches on a use-case tag itself. Concrete strategies (static dipole,
// forward explicit) live in package solver, which imports this package;
// this package only defines the contract, keeping implementations in a
// leaf subpackage separate from the driver that calls them.
type Strategy interface {
	// InitFields seeds E, B and Bext on every node once, before the first
	// cycle.
	InitFields(fields *FieldGrid)

	// Solve advances the field grid by one cycle, given the current
	// density. It must leave ghost layers consistent with the periodic
	// boundary convention before returning.
	Solve(fields *FieldGrid, centers *CenterGrid, density *DensityGrid)
}
