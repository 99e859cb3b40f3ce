package systems

import (
	cfg "github.com/automoto/cubewalk/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRestart returns a system that calls restart when the restart
// action is pressed. It runs while paused too.
func NewUpdateRestart(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
			restart()
		}
	}
}
