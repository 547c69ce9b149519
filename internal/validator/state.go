package validator

import "github.com/looplab/fsm"

// Section lifecycle. Short-circuiting is an explicit transition so the
// aggregation rule "skipped items count as failed" lives in the machine
// definition, not in incidental control flow.
const (
	StateNotStarted      = "not_started"
	StateArtifactChecked = "artifact_checked"
	StateShortCircuited  = "short_circuited"
	StateContentChecked  = "content_checked"
	StateDone            = "done"
)

const (
	eventProbe        = "probe"
	eventShortCircuit = "short_circuit"
	eventInspect      = "inspect"
	eventFinish       = "finish"
)

func newSectionFSM() *fsm.FSM {
	return fsm.NewFSM(
		StateNotStarted,
		fsm.Events{
			{Name: eventProbe, Src: []string{StateNotStarted}, Dst: StateArtifactChecked},
			{Name: eventShortCircuit, Src: []string{StateArtifactChecked}, Dst: StateShortCircuited},
			{Name: eventInspect, Src: []string{StateArtifactChecked}, Dst: StateContentChecked},
			{Name: eventFinish, Src: []string{StateShortCircuited, StateContentChecked}, Dst: StateDone},
		},
		fsm.Callbacks{},
	)
}
