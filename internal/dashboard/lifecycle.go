package dashboard

import (
	"time"

	"writeflow-api/internal/models"
)

// Task lifecycle: pending -> in-progress -> submitted -> in-review ->
// {approved | needs-revision}, with needs-revision cycling back to
// in-progress. Only membership in the enumerated set is enforced here;
// ordering is a product convention, not a hard gate.

// CanSetStatus reports whether the viewer may move the task into newStatus.
// Admins may set any status. Writers may only touch tasks assigned to them,
// may never set the administrator-only statuses (in-review, approved), and
// may not edit a task already in review or approved.
func CanSetStatus(task models.Task, newStatus models.TaskStatus, viewer models.Viewer) bool {
	if !CanPerformAction(viewer, ActionUpdateTaskStatus) {
		return false
	}
	if viewer.Role == models.RoleAdmin {
		return true
	}
	if !task.AssignedToWriter(viewer.ID) {
		return false
	}
	if newStatus == models.StatusInReview || newStatus == models.StatusApproved {
		return false
	}
	if task.Status == models.StatusInReview || task.Status == models.StatusApproved {
		return false
	}
	return true
}

// ApplyStatus moves the task into newStatus on behalf of the viewer,
// stamping SubmittedAt on the first transition into submitted and ReviewedAt
// on the first transition into in-review. Once set, those timestamps are
// never re-stamped or cleared. Returns ErrInvalidTransition if newStatus is
// outside the enumerated set and ErrForbidden if the viewer guard rejects
// the change; in both cases the task is untouched.
func ApplyStatus(task *models.Task, newStatus models.TaskStatus, viewer models.Viewer, now time.Time) error {
	if !newStatus.Valid() {
		return ErrInvalidTransition
	}
	if !CanSetStatus(*task, newStatus, viewer) {
		return ErrForbidden
	}

	task.Status = newStatus
	if newStatus == models.StatusSubmitted && task.SubmittedAt == nil {
		stamp := now
		task.SubmittedAt = &stamp
	}
	if newStatus == models.StatusInReview && task.ReviewedAt == nil {
		stamp := now
		task.ReviewedAt = &stamp
	}
	return nil
}
