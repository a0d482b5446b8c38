package database

import (
	"time"

	"writeflow-api/internal/auth"
	"writeflow-api/internal/models"

	"gorm.io/gorm"
)

func daysFromNow(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

// Seed loads the synthetic demo dataset: the writing team, a handful of tasks
// across the lifecycle, task templates, and two login accounts (admin/admin
// and alex/alex). Existing rows are left alone, so calling Seed twice is safe.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Writer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	writers := []models.Writer{
		{
			ID:        "sarah-wilson",
			Name:      "Sarah Wilson",
			Email:     "sarah@company.com",
			Bio:       "Experienced content writer specializing in tech and marketing",
			Role:      models.RoleWriter,
			Expertise: models.StringList{"Blog Writing", "Technical Content", "SEO"},
			Status:    models.WriterActive,
			TeamTags:  models.StringList{"blog", "technical"},
			Performance: models.Performance{
				CompletedTasks:       24,
				TotalWordCount:       48000,
				DeadlinesMet:         22,
				AverageRating:        4.8,
				WeeklyWordCount:      3200,
				WeeklyTasksCompleted: 2,
			},
		},
		{
			ID:        "mike-chen",
			Name:      "Mike Chen",
			Email:     "mike@company.com",
			Bio:       "Creative copywriter with social media expertise",
			Role:      models.RoleWriter,
			Expertise: models.StringList{"Social Media", "Creative Copy", "Brand Voice"},
			Status:    models.WriterActive,
			TeamTags:  models.StringList{"social-media", "creative"},
			Performance: models.Performance{
				CompletedTasks:       18,
				TotalWordCount:       32000,
				DeadlinesMet:         17,
				AverageRating:        4.6,
				WeeklyWordCount:      1800,
				WeeklyTasksCompleted: 3,
			},
		},
		{
			ID:        "alex-chen",
			Name:      "Alex Chen",
			Email:     "alex@company.com",
			Bio:       "Content writer focused on technical documentation",
			Role:      models.RoleWriter,
			Expertise: models.StringList{"Technical Writing", "Documentation", "API Guides"},
			Status:    models.WriterActive,
			TeamTags:  models.StringList{"technical", "documentation"},
			Performance: models.Performance{
				CompletedTasks:       15,
				TotalWordCount:       28000,
				DeadlinesMet:         14,
				AverageRating:        4.7,
				WeeklyWordCount:      2100,
				WeeklyTasksCompleted: 1,
			},
		},
		{
			ID:        "admin",
			Name:      "Alex Chen",
			Email:     "admin@company.com",
			Bio:       "Team manager and content strategist",
			Role:      models.RoleAdmin,
			Expertise: models.StringList{"Team Management", "Content Strategy"},
			Status:    models.WriterActive,
			TeamTags:  models.StringList{"management"},
		},
	}
	if err := db.Create(&writers).Error; err != nil {
		return err
	}

	now := time.Now()
	tasks := []models.Task{
		{
			ID:          "task-1",
			Title:       "Blog Post: AI in Content Marketing",
			Description: "Write a comprehensive guide about AI tools in content marketing",
			WordCount:   2000,
			Deadline:    daysFromNow(3),
			AssignedTo:  models.StringList{"sarah-wilson"},
			Status:      models.StatusInProgress,
			Tags:        models.StringList{"blog", "ai", "marketing"},
			CreatedBy:   "admin",
			CreatedAt:   now,
		},
		{
			ID:          "task-2",
			Title:       "Social Media Copy - Product Launch",
			Description: "Create engaging social media posts for new product launch",
			WordCount:   500,
			Deadline:    daysFromNow(1),
			AssignedTo:  models.StringList{"mike-chen"},
			Status:      models.StatusPending,
			Tags:        models.StringList{"social-media", "product-launch"},
			CreatedBy:   "admin",
			CreatedAt:   now,
		},
		{
			ID:          "task-3",
			Title:       "Email Newsletter - Weekly Roundup",
			Description: "Write weekly newsletter with industry insights",
			WordCount:   800,
			Deadline:    daysFromNow(2),
			AssignedTo:  models.StringList{"sarah-wilson"},
			Status:      models.StatusSubmitted,
			Tags:        models.StringList{"newsletter", "email"},
			CreatedBy:   "admin",
			CreatedAt:   *daysFromNow(-5),
			SubmittedAt: daysFromNow(-1),
		},
		{
			ID:          "task-4",
			Title:       "Product Description - New Features",
			Description: "Create compelling product descriptions for new feature set",
			WordCount:   1200,
			Deadline:    daysFromNow(4),
			AssignedTo:  models.StringList{"sarah-wilson"},
			Status:      models.StatusInReview,
			Tags:        models.StringList{"product", "features"},
			CreatedBy:   "admin",
			CreatedAt:   *daysFromNow(-3),
			SubmittedAt: daysFromNow(-1),
			ReviewedAt:  &now,
		},
		{
			ID:          "task-5",
			Title:       "API Documentation Update",
			Description: "Update REST API documentation with new endpoints",
			WordCount:   1500,
			Deadline:    daysFromNow(5),
			AssignedTo:  models.StringList{"alex-chen"},
			Status:      models.StatusInProgress,
			Tags:        models.StringList{"documentation", "api"},
			CreatedBy:   "admin",
			CreatedAt:   *daysFromNow(-2),
		},
		{
			ID:          "task-6",
			Title:       "User Guide - Advanced Features",
			Description: "Create comprehensive user guide for advanced platform features",
			WordCount:   2500,
			Deadline:    daysFromNow(7),
			AssignedTo:  models.StringList{"alex-chen"},
			Status:      models.StatusPending,
			Tags:        models.StringList{"user-guide", "features"},
			CreatedBy:   "admin",
			CreatedAt:   now,
		},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return err
	}

	templates := []models.TaskTemplate{
		{
			ID:          "tpl-blog-post",
			Title:       "Blog Post",
			Description: "Longform blog post with SEO research and two revision rounds",
			WordCount:   1500,
			Tags:        models.StringList{"blog", "seo"},
			Category:    "blog",
		},
		{
			ID:          "tpl-newsletter",
			Title:       "Weekly Newsletter",
			Description: "Weekly roundup newsletter with industry insights",
			WordCount:   800,
			Tags:        models.StringList{"newsletter", "email"},
			Category:    "email",
		},
	}
	if err := db.Create(&templates).Error; err != nil {
		return err
	}

	adminHash, err := auth.HashPassword("admin")
	if err != nil {
		return err
	}
	alexHash, err := auth.HashPassword("alex")
	if err != nil {
		return err
	}
	users := []models.User{
		{ID: "admin", Username: "admin", Password: adminHash, Name: "Alex Chen", Role: models.RoleAdmin, WriterID: "admin"},
		{ID: "alex-chen", Username: "alex", Password: alexHash, Name: "Alex Chen", Role: models.RoleWriter, WriterID: "alex-chen"},
	}
	return db.Create(&users).Error
}
