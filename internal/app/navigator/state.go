package navigator

import (
	"context"

	"github.com/looplab/fsm"

	"memeview/internal/config/logger"
)

// Display states
const (
	ShowingContent = "content"
	ShowingError   = "error"
)

// Display events
const (
	Show = "show"
	Fail = "fail"
)

// newDisplayFSM creates the content/error machine, starting in content
func newDisplayFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		ShowingContent,
		fsm.Events{
			{Name: Show, Src: []string{ShowingError}, Dst: ShowingContent},
			{Name: Fail, Src: []string{ShowingContent}, Dst: ShowingError},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// transition fires the event when the machine is not already in its destination
func transition(ctx context.Context, machine *fsm.FSM, event string) {
	if !machine.Can(event) {
		return
	}

	_ = machine.Event(ctx, event)
}
