package repository

import (
	"context"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// Models lists every persisted model, in migration order.
func Models() []any {
	return []any{&model.Project{}, &model.Category{}, &model.Task{}, &model.ChatMessage{}, &model.TaskComment{}}
}

// Migrate creates or updates the schema
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

// SeedDefaults creates the default team project and personal categories
// when the database holds neither projects nor categories. It reports
// whether anything was created.
func SeedDefaults(ctx context.Context, projects *ProjectRepository, categories *CategoryRepository) (bool, error) {
	nProjects, err := projects.Count(ctx)
	if err != nil {
		return false, err
	}
	nCategories, err := categories.Count(ctx)
	if err != nil {
		return false, err
	}
	if nProjects > 0 || nCategories > 0 {
		return false, nil
	}

	if err := projects.Create(ctx, &model.Project{
		Name:        "Team Project",
		Description: "Project shared with the team",
		Type:        model.WorkspaceTeam,
		Color:       "bg-green-500",
		Icon:        "Users",
	}); err != nil {
		return false, err
	}

	defaults := []model.Category{
		{Name: "Work", Description: "Work related tasks", Color: "bg-blue-500", Icon: "Building2"},
		{Name: "Home", Description: "Home and private tasks", Color: "bg-pink-500", Icon: "Heart"},
		{Name: "Other", Description: "Everything else", Color: "bg-gray-500", Icon: "Star"},
	}
	for i := range defaults {
		defaults[i].WorkspaceType = model.WorkspacePersonal
		if err := categories.Create(ctx, &defaults[i]); err != nil {
			return false, err
		}
	}
	return true, nil
}
