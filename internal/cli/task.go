package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/orgdesk/orgdesk/internal/store"
	"github.com/orgdesk/orgdesk/internal/view"
	"github.com/orgdesk/orgdesk/pkg/statemachine"
)

func (a *app) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage an organization's tasks",
	}
	cmd.AddCommand(a.taskAddCmd(), a.taskToggleCmd(true), a.taskToggleCmd(false), a.taskDeleteCmd())
	return cmd
}

func (a *app) taskAddCmd() *cobra.Command {
	var orgID int64
	var title, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			_, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(view.ActionAddTask, role) {
				return errors.New("only an owner can create tasks")
			}

			msg, err := a.gw.AddTask(ctx, orgID, title, description)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().StringVarP(&title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("title")
	return cmd
}

// taskToggleCmd builds the complete and uncheck commands. Both drive a
// completion state machine seeded from the fetched task: the transition
// into the in-flight state rejects toggles that make no sense for the
// current value, and the settled state is only entered once the server
// confirms.
func (a *app) taskToggleCmd(complete bool) *cobra.Command {
	var orgID, taskID int64

	verb, action, short := "complete", view.ActionCompleteTask, "Mark a task completed"
	if !complete {
		verb, action, short = "uncheck", view.ActionUncheckTask, "Clear a task's completion"
	}

	cmd := &cobra.Command{
		Use:   verb,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			s, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(action, role) {
				return errors.Errorf("role %s may not %s tasks", role, verb)
			}

			task, ok := findTask(s, taskID)
			if !ok {
				return errors.Errorf("no task %d in organization %d", taskID, orgID)
			}

			m := statemachine.NewCompletionStateMachineFrom(task.Toggled)
			inflight, settled := statemachine.TaskCompleting, statemachine.TaskComplete
			if !complete {
				inflight, settled = statemachine.TaskUncompleting, statemachine.TaskIncomplete
			}
			if err := m.TransitTo(inflight); err != nil {
				if complete {
					return errors.Errorf("task %d is already completed", taskID)
				}
				return errors.Errorf("task %d is not completed", taskID)
			}

			if !s.Begin(store.ScopeTasks, taskID) {
				return errors.Errorf("another command for task %d is still in flight", taskID)
			}
			defer s.End(store.ScopeTasks, taskID)

			var msg string
			if complete {
				msg, err = a.gw.CompleteTask(ctx, taskID)
			} else {
				msg, err = a.gw.UncheckTask(ctx, taskID)
			}
			if err != nil {
				m.Reset()
				return err
			}

			if err := m.TransitTo(settled); err != nil {
				return err
			}
			s.Apply(store.Patch{OrgID: orgID, Scope: store.ScopeTasks, EntityID: taskID, Kind: store.ToggleCompletion})

			fmt.Fprintln(a.out, msg)
			a.renderTasks(s, role)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&taskID, "task", "t", 0, "task id")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("task")
	return cmd
}

func (a *app) taskDeleteCmd() *cobra.Command {
	var orgID, taskID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			s, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(view.ActionDeleteTask, role) {
				return errors.New("only an owner can delete tasks")
			}

			if !s.Begin(store.ScopeTasks, taskID) {
				return errors.Errorf("another command for task %d is still in flight", taskID)
			}
			defer s.End(store.ScopeTasks, taskID)

			msg, err := a.gw.DeleteTask(ctx, taskID)
			if err != nil {
				return err
			}
			s.Apply(store.Patch{OrgID: orgID, Scope: store.ScopeTasks, EntityID: taskID, Kind: store.MarkRemoved})

			fmt.Fprintln(a.out, msg)
			a.renderTasks(s, role)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&taskID, "task", "t", 0, "task id")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("task")
	return cmd
}

func findTask(s *store.OrgStore, taskID int64) (store.TaskEntity, bool) {
	for _, t := range s.Tasks() {
		if t.ID == taskID {
			return t, true
		}
	}
	return store.TaskEntity{}, false
}
