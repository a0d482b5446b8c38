package dashboard

import (
	"writeflow-api/internal/models"
)

// Stats holds the role-scoped summary counts for a dashboard view.
// DeadlinesMet and AverageRating are populated only for writer viewers whose
// writer record exists; otherwise they marshal as absent.
type Stats struct {
	TotalTasks     int     `json:"totalTasks"`
	ActiveTasks    int     `json:"activeTasks"`
	CompletedTasks int     `json:"completedTasks"`
	SubmittedTasks int     `json:"submittedTasks"`
	ActiveWriters  int     `json:"activeWriters"`
	DeadlinesMet   int     `json:"deadlinesMet,omitempty"`
	AverageRating  float64 `json:"averageRating,omitempty"`
}

// WeeklySummary holds word-count/task-count/rating figures for the current
// week, team-wide for admins or personal for writers.
type WeeklySummary struct {
	TotalWords     int     `json:"totalWords"`
	TasksCompleted int     `json:"tasksCompleted"`
	AverageRating  float64 `json:"averageRating"`
}

// VisibleTasks returns the subset of tasks the viewer is authorized to see,
// original order preserved. Admins see everything; writers see the tasks
// assigned to them; any other role sees nothing.
func VisibleTasks(tasks []models.Task, viewer models.Viewer) []models.Task {
	switch viewer.Role {
	case models.RoleAdmin:
		return tasks
	case models.RoleWriter:
		visible := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.AssignedToWriter(viewer.ID) {
				visible = append(visible, t)
			}
		}
		return visible
	default:
		return []models.Task{}
	}
}

// RoleStats computes summary counts over the viewer's visible tasks. The
// activeWriters figure is computed over all writers and does not depend on
// the viewer. Writer viewers additionally get their own deadlinesMet and
// averageRating figures; the writer record is matched by ID (never by
// display name), and a lookup miss leaves the fields zero.
func RoleStats(visibleTasks []models.Task, writers []models.Writer, viewer models.Viewer) Stats {
	var stats Stats
	stats.TotalTasks = len(visibleTasks)
	for _, t := range visibleTasks {
		switch t.Status {
		case models.StatusPending, models.StatusInProgress:
			stats.ActiveTasks++
		case models.StatusApproved:
			stats.CompletedTasks++
		case models.StatusSubmitted:
			stats.SubmittedTasks++
		}
	}
	for _, w := range writers {
		if w.Status == models.WriterActive && w.Role == models.RoleWriter {
			stats.ActiveWriters++
		}
	}

	if viewer.Role == models.RoleWriter {
		if w, ok := findWriter(writers, viewer.ID); ok {
			stats.DeadlinesMet = w.Performance.DeadlinesMet
			stats.AverageRating = w.Performance.AverageRating
		}
	}

	return stats
}

// WeeklyPerformance computes weekly figures from writer performance records.
// Admins get team-wide sums (the rating mean excludes writers with a zero
// rating); writers get their own record verbatim. The visibleTasks parameter
// is accepted for interface symmetry with RoleStats and is never read: the
// output depends only on writers and viewer.
func WeeklyPerformance(visibleTasks []models.Task, writers []models.Writer, viewer models.Viewer) WeeklySummary {
	_ = visibleTasks

	var weekly WeeklySummary
	switch viewer.Role {
	case models.RoleAdmin:
		ratingSum := 0.0
		rated := 0
		for _, w := range writers {
			if w.Role != models.RoleWriter {
				continue
			}
			weekly.TotalWords += w.Performance.WeeklyWordCount
			weekly.TasksCompleted += w.Performance.WeeklyTasksCompleted
			if w.Performance.AverageRating > 0 {
				ratingSum += w.Performance.AverageRating
				rated++
			}
		}
		if rated > 0 {
			weekly.AverageRating = ratingSum / float64(rated)
		}
	case models.RoleWriter:
		if w, ok := findWriter(writers, viewer.ID); ok {
			weekly.TotalWords = w.Performance.WeeklyWordCount
			weekly.TasksCompleted = w.Performance.WeeklyTasksCompleted
			weekly.AverageRating = w.Performance.AverageRating
		}
	}
	return weekly
}

// PendingReviews returns the tasks awaiting administrative review, original
// order preserved. Non-admin viewers always get an empty result.
func PendingReviews(tasks []models.Task, viewer models.Viewer) []models.Task {
	if viewer.Role != models.RoleAdmin {
		return []models.Task{}
	}
	pending := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Status == models.StatusSubmitted {
			pending = append(pending, t)
		}
	}
	return pending
}

// VisibleWriters returns the writer profiles the viewer may see: admins see
// the whole writing team; writers see themselves and the admins.
func VisibleWriters(writers []models.Writer, viewer models.Viewer) []models.Writer {
	visible := make([]models.Writer, 0, len(writers))
	for _, w := range writers {
		if viewer.Role == models.RoleAdmin {
			if w.Role == models.RoleWriter {
				visible = append(visible, w)
			}
			continue
		}
		if w.ID == viewer.ID || w.Role == models.RoleAdmin {
			visible = append(visible, w)
		}
	}
	return visible
}

func findWriter(writers []models.Writer, id string) (models.Writer, bool) {
	for _, w := range writers {
		if w.ID == id {
			return w, true
		}
	}
	return models.Writer{}, false
}
