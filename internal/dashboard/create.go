package dashboard

import (
	"strings"
	"time"

	"writeflow-api/internal/models"

	"github.com/google/uuid"
)

// TaskInput carries the caller-supplied fields for a new task.
type TaskInput struct {
	Title       string
	Description string
	WordCount   int
	Deadline    *time.Time
	AssignedTo  []string
	Tags        []string
}

// WriterInput carries the caller-supplied fields for a new writer profile.
type WriterInput struct {
	Name      string
	Email     string
	Bio       string
	Expertise []string
	TeamTags  []string
}

// NewTask builds a task from input: fresh id, status pending, creation
// timestamp, no submission/review stamps. Title, description and at least
// one assignee are required.
func NewTask(input TaskInput, creator models.Viewer, now time.Time) (models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Description) == "" {
		return models.Task{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	assignees := cleanList(input.AssignedTo)
	if len(assignees) == 0 {
		return models.Task{}, &ValidationError{Field: "assignedTo", Reason: "at least one assignee is required"}
	}
	if input.WordCount < 0 {
		return models.Task{}, &ValidationError{Field: "wordCount", Reason: "must not be negative"}
	}

	return models.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		WordCount:   input.WordCount,
		Deadline:    input.Deadline,
		AssignedTo:  assignees,
		Status:      models.StatusPending,
		Tags:        cleanList(input.Tags),
		CreatedBy:   creator.ID,
		CreatedAt:   now,
		SubmittedAt: nil,
		ReviewedAt:  nil,
	}, nil
}

// NewWriter builds a writer profile from input: fresh id, role forced to
// writer, status active, zeroed performance. Name and email are required.
func NewWriter(input WriterInput) (models.Writer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Writer{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Email) == "" {
		return models.Writer{}, &ValidationError{Field: "email", Reason: "must not be empty"}
	}

	return models.Writer{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Bio:         input.Bio,
		Role:        models.RoleWriter,
		Expertise:   cleanList(input.Expertise),
		Status:      models.WriterActive,
		TeamTags:    cleanList(input.TeamTags),
		Performance: models.Performance{},
	}, nil
}

// cleanList trims entries and drops empties, preserving order.
func cleanList(in []string) models.StringList {
	out := make(models.StringList, 0, len(in))
	for _, v := range in {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
