package rc

// Stats reports the tallies the control blocks maintain.
type Stats struct {
	Blocks  int // control blocks not yet freed
	Objects int // managed objects not yet destroyed
}

var live Stats

// Live returns the current number of live control blocks and managed
// objects. Both return to their starting values once every handle has
// released; tests and long-running tools use the delta as a leak check.
func Live() Stats { return live }
