package diagnose

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CheckID names one diagnostic dimension. The set of identities is fixed;
// every run produces exactly one finding per identity.
type CheckID string

const (
	CheckAudioStack     CheckID = "audio_stack"
	CheckDevicePresence CheckID = "device_presence"
	CheckSinkValidity   CheckID = "sink_validity"
	CheckMuteState      CheckID = "mute_state"
	CheckSinkInputs     CheckID = "sink_inputs"
	CheckBluetooth      CheckID = "bluetooth"
)

// checkRank is the static causal priority: a failure upstream (no audio
// server) is a more fundamental cause than a failure downstream (a muted
// sink). The rank governs display order and root-cause selection, never
// execution order.
var checkRank = map[CheckID]int{
	CheckAudioStack:     0,
	CheckDevicePresence: 1,
	CheckSinkValidity:   2,
	CheckMuteState:      3,
	CheckSinkInputs:     4,
	CheckBluetooth:      5,
}

var checkOrder = []CheckID{
	CheckAudioStack,
	CheckDevicePresence,
	CheckSinkValidity,
	CheckMuteState,
	CheckSinkInputs,
	CheckBluetooth,
}

// KnownChecks returns every check identity in priority order.
func KnownChecks() []CheckID {
	out := make([]CheckID, len(checkOrder))
	copy(out, checkOrder)
	return out
}

// Rank returns the causal priority of the check, lower being more upstream.
func (id CheckID) Rank() int {
	rank, ok := checkRank[id]
	if !ok {
		return len(checkRank)
	}
	return rank
}

// Known reports whether the identity belongs to the fixed check set.
func (id CheckID) Known() bool {
	_, ok := checkRank[id]
	return ok
}

var displayCaser = cases.Title(language.English)

// DisplayName renders the identity for humans, e.g. "Audio Stack".
func (id CheckID) DisplayName() string {
	return displayCaser.String(strings.ReplaceAll(string(id), "_", " "))
}
