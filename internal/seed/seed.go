// Package seed loads the demonstration dataset into an empty database.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/model"
	"github.com/jmoreau/timemanager/internal/repository"
)

func ptr[T any](v T) *T { return &v }

// Repos groups the repositories the seeder writes through.
type Repos struct {
	Users    repository.UserRepository
	Clients  repository.ClientRepository
	Projects repository.ProjectRepository
	Tasks    repository.TaskRepository
}

// Run inserts the demo dataset. It is a no-op when users already exist, so
// restarting with -seed stays idempotent.
func Run(ctx context.Context, log *zap.Logger, r Repos) error {
	existing, err := r.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("seed skipped, database not empty")
		return nil
	}

	users := []model.User{
		{Username: "admin", Email: "admin@timemanager.io", Role: constants.RoleAdmin},
		{Username: "marie_dupont", Email: "marie.dupont@timemanager.io", Role: constants.RoleUser},
		{Username: "jean_martin", Email: "jean.martin@timemanager.io", Role: constants.RoleUser},
	}
	userIDs := make([]int64, 0, len(users))
	for _, u := range users {
		created, err := r.Users.Create(ctx, u)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, created.ID)
	}

	clients := []model.Client{
		{Name: "TechCorp SA", Email: "contact@techcorp.io", Phone: ptr("+33 1 23 45 67 89"), Company: ptr("TechCorp SA")},
		{Name: "StartupX", Email: "info@startupx.io", Phone: ptr("+33 1 98 76 54 32"), Company: ptr("StartupX SAS")},
		{Name: "BigCompany", Email: "contact@bigcompany.io", Phone: ptr("+33 1 11 22 33 44"), Company: ptr("BigCompany International")},
	}
	clientIDs := make([]int64, 0, len(clients))
	for _, c := range clients {
		created, err := r.Clients.Create(ctx, c)
		if err != nil {
			return err
		}
		clientIDs = append(clientIDs, created.ID)
	}

	projects := []model.Project{
		{Name: "E-commerce Website", ClientID: &clientIDs[0], Description: ptr("Full e-commerce platform build"), Status: constants.ProjectActive},
		{Name: "Mobile Application", ClientID: &clientIDs[0], Description: ptr("iOS and Android application"), Status: constants.ProjectActive},
		{Name: "UX Redesign", ClientID: &clientIDs[1], Description: ptr("User interface overhaul"), Status: constants.ProjectActive},
		{Name: "Cloud Migration", ClientID: &clientIDs[2], Description: ptr("Infrastructure move to the cloud"), Status: constants.ProjectOnHold},
	}
	projectIDs := make([]int64, 0, len(projects))
	for _, p := range projects {
		created, err := r.Projects.Create(ctx, p)
		if err != nil {
			return err
		}
		projectIDs = append(projectIDs, created.ID)
	}

	tasks := []model.Task{
		{ProjectID: projectIDs[0], Name: "Design mockups", Description: ptr("Figma mockups"), AssignedTo: &userIDs[1], TimeSpent: 8, Status: constants.TaskDone},
		{ProjectID: projectIDs[0], Name: "Frontend development", Description: ptr("HTML/CSS/JS integration"), AssignedTo: &userIDs[2], TimeSpent: 12, Status: constants.TaskInProgress},
		{ProjectID: projectIDs[0], Name: "Unit tests", Description: ptr("Write the unit tests"), AssignedTo: &userIDs[1], TimeSpent: 0, Status: constants.TaskTodo},
		{ProjectID: projectIDs[1], Name: "Technical architecture", Description: ptr("Define the architecture"), AssignedTo: &userIDs[0], TimeSpent: 4, Status: constants.TaskDone},
		{ProjectID: projectIDs[1], Name: "iOS development", Description: ptr("Build the iOS app"), AssignedTo: &userIDs[2], TimeSpent: 6, Status: constants.TaskInProgress},
		{ProjectID: projectIDs[2], Name: "UX audit", Description: ptr("Review the current flows"), AssignedTo: &userIDs[1], TimeSpent: 3, Status: constants.TaskInProgress},
	}
	for _, t := range tasks {
		if _, err := r.Tasks.Create(ctx, t); err != nil {
			return err
		}
	}

	log.Info("seed complete",
		zap.Int("users", len(users)),
		zap.Int("clients", len(clients)),
		zap.Int("projects", len(projects)),
		zap.Int("tasks", len(tasks)),
	)
	return nil
}
