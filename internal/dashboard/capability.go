package dashboard

import (
	"writeflow-api/internal/models"
)

// Action names a capability that can be checked against a viewer.
type Action string

const (
	ActionCreateTask          Action = "create-task"
	ActionManageWriters       Action = "manage-writers"
	ActionReviewSubmissions   Action = "review-submissions"
	ActionUpdateTaskStatus    Action = "update-task-status"
	ActionViewTeamPerformance Action = "view-team-performance"
)

// CanPerformAction is the single capability check consulted by every handler
// and by the lifecycle guard. Status updates are allowed for both roles; the
// lifecycle applies further per-task restrictions for writers.
func CanPerformAction(viewer models.Viewer, action Action) bool {
	switch action {
	case ActionCreateTask, ActionManageWriters, ActionReviewSubmissions, ActionViewTeamPerformance:
		return viewer.Role == models.RoleAdmin
	case ActionUpdateTaskStatus:
		return viewer.Role == models.RoleAdmin || viewer.Role == models.RoleWriter
	default:
		return false
	}
}
