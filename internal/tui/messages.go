package tui

import "github.com/upwatchdev/upwatch/models"

// pollMsg carries one completed poll result from the engine.
type pollMsg struct{ result models.PollResult }

// changeMsg carries one status-change event from the engine.
type changeMsg struct{ change models.StatusChange }

// engineClosedMsg signals that the scheduler's channels have closed and
// no further polls will arrive.
type engineClosedMsg struct{}

// notifiedMsg reports that a status change was handed to the
// notification dispatcher.
type notifiedMsg struct{ change models.StatusChange }
