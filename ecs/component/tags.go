package component

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()

// CloneTag marks a temporary duplicate ball. Clones never score.
type CloneTag struct{}

var CloneTagComponent = NewComponent[CloneTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
