package component

// Goal is a scoring sensor. A ball entering the goal on Side scores for the
// opposite side.
type Goal struct {
	Side Side
}

var GoalComponent = NewComponent[Goal]()
