package entity

import (
	"fmt"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// Field holds the long-lived entities of a match.
type Field struct {
	Ball   ecs.Entity
	Player ecs.Entity
	AI     ecs.Entity
	Match  ecs.Entity
}

var fieldPrefabs = []string{
	"wall_top.yaml",
	"wall_bottom.yaml",
	"goal_left.yaml",
	"goal_right.yaml",
}

// NewField builds walls, goals, both paddles, the ball and the match
// scoreboard.
func NewField(w *ecs.World, pointsToWin int) (*Field, error) {
	for _, p := range fieldPrefabs {
		if _, err := BuildEntity(w, p); err != nil {
			return nil, err
		}
	}

	var f Field
	var err error
	if f.Player, err = BuildEntity(w, "player_paddle.yaml"); err != nil {
		return nil, err
	}
	if f.AI, err = BuildEntity(w, "ai_paddle.yaml"); err != nil {
		return nil, err
	}
	if f.Ball, err = BuildEntity(w, "ball.yaml"); err != nil {
		return nil, err
	}
	if f.Match, err = NewMatch(w, pointsToWin); err != nil {
		return nil, err
	}
	return &f, nil
}

func NewMatch(w *ecs.World, pointsToWin int) (ecs.Entity, error) {
	if pointsToWin <= 0 {
		return 0, fmt.Errorf("match: points to win must be > 0, got %d", pointsToWin)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MatchComponent.Kind(), &component.Match{PointsToWin: pointsToWin}); err != nil {
		return 0, fmt.Errorf("match: %w", err)
	}
	return e, nil
}
