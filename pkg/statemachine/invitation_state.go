// Copyright 2026 Orgdesk Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package statemachine

// InvitationStatus tracks the lifecycle of a pending employment invitation
// as seen by the client. Removed is terminal on the inviting side; Accepted
// and Declined are terminal on the invitee side.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
	InvitationRemoved  InvitationStatus = "REMOVED"
)

// IsTerminal reports whether no further responses are possible.
func (is InvitationStatus) IsTerminal() bool {
	return is == InvitationAccepted || is == InvitationDeclined || is == InvitationRemoved
}

// NewInvitationStateMachine builds the response chart for a pending invitation.
func NewInvitationStateMachine() *StateMachine[InvitationStatus] {
	return NewInvitationStateMachineFrom(InvitationPending)
}

// NewInvitationStateMachineFrom builds the response chart seeded with an
// already-known status, so a fetched invitation that was answered earlier
// starts in its terminal state and admits no further transition.
func NewInvitationStateMachineFrom(status InvitationStatus) *StateMachine[InvitationStatus] {
	sm := NewWithState(status)

	sm.Allow(InvitationPending, InvitationAccepted, InvitationDeclined, InvitationRemoved)

	return sm
}
