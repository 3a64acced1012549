// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

// Phase is a session's position in the transaction lifecycle.
// It is mutated only by the transact drivers and fully determines
// whether a call starts a new transaction, joins the current one,
// or is rejected.
type Phase uint8

const (
	// PhaseReady accepts a new outermost transaction.
	PhaseReady Phase = iota
	// PhaseInitializing is in effect while Initialize runs.
	PhaseInitializing
	// PhaseAction is in effect while the transaction action runs.
	// Transact calls observed in this phase coalesce into the current
	// transaction instead of starting their own.
	PhaseAction
	// PhaseFinalizing is in effect while Finalize runs.
	PhaseFinalizing
	// PhaseError is in effect while HandleError runs.
	PhaseError
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseInitializing:
		return "initializing"
	case PhaseAction:
		return "action"
	case PhaseFinalizing:
		return "finalizing"
	case PhaseError:
		return "error"
	}
	return "invalid"
}
