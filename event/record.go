package event

import (
	"fmt"
	"time"

	"github.com/lixenwraith/catradar/constant"
)

// Record captures one state transition of the observed agent
type Record struct {
	Timestamp time.Time
	AgentID   int32
	PrevState int32
	NewState  int32
	// ChangerID is the neighbor that established the new state,
	// or constant.NoAgent when the agent changed on its own
	ChangerID int32
}

var stateNames = [constant.StateCount]string{"IDLE", "INTERACT", "INTERSECTION"}

func stateName(s int32) string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// String renders the record in the log pager wording
func (r Record) String() string {
	if r.ChangerID == constant.NoAgent {
		return fmt.Sprintf("State of %d id changed: %s -> %s",
			r.AgentID, stateName(r.PrevState), stateName(r.NewState))
	}
	return fmt.Sprintf("State of %d id changed: %s -> %s by %d id",
		r.AgentID, stateName(r.PrevState), stateName(r.NewState), r.ChangerID)
}
