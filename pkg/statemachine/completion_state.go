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

// CompletionStatus tracks a task's completion toggle against the remote
// service. Completing and Uncompleting cover the window between issuing
// the command and the gateway confirming it; a failed command returns the
// task to its pre-transition state.
type CompletionStatus string

const (
	TaskIncomplete   CompletionStatus = "INCOMPLETE"
	TaskCompleting   CompletionStatus = "COMPLETING"
	TaskComplete     CompletionStatus = "COMPLETE"
	TaskUncompleting CompletionStatus = "UNCOMPLETING"
)

// IsSettled reports whether the status is not waiting on a gateway result.
func (cs CompletionStatus) IsSettled() bool {
	return cs == TaskIncomplete || cs == TaskComplete
}

// IsInFlight reports whether a command for this task is pending.
func (cs CompletionStatus) IsInFlight() bool {
	return cs == TaskCompleting || cs == TaskUncompleting
}

// NewCompletionStateMachine builds the toggle chart for a task that is not
// yet completed. Failure edges point back at the pre-transition state.
func NewCompletionStateMachine() *StateMachine[CompletionStatus] {
	sm := NewWithState(TaskIncomplete)

	sm.Allow(TaskIncomplete, TaskCompleting).
		Allow(TaskCompleting, TaskComplete, TaskIncomplete).
		Allow(TaskComplete, TaskUncompleting).
		Allow(TaskUncompleting, TaskIncomplete, TaskComplete)

	return sm
}

// NewCompletionStateMachineFrom builds the toggle chart seeded with the
// fetched completion value.
func NewCompletionStateMachineFrom(completed bool) *StateMachine[CompletionStatus] {
	sm := NewCompletionStateMachine()
	if completed {
		sm.SetCurrent(TaskComplete)
	}
	return sm
}
