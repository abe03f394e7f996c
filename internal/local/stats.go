package local

import (
	"math"

	"github.com/jmoreau/timemanager/internal/constants"
)

// DashboardStats is the derived overview computed on read, never stored.
type DashboardStats struct {
	TotalHours      float64 `json:"total_hours"`
	ActiveProjects  int     `json:"active_projects"`
	TasksTodo       int     `json:"tasks_todo"`
	TasksInProgress int     `json:"tasks_in_progress"`
	TasksDone       int     `json:"tasks_done"`
	TotalTasks      int     `json:"total_tasks"`
	Clients         int     `json:"clients"`
}

// ProjectStats summarizes one project's task board.
type ProjectStats struct {
	TotalTasks      int     `json:"total_tasks"`
	TasksTodo       int     `json:"tasks_todo"`
	TasksInProgress int     `json:"tasks_in_progress"`
	TasksDone       int     `json:"tasks_done"`
	TotalTime       float64 `json:"total_time"`
	// Progress is done/total*100, rounded; 0 for an empty board.
	Progress int `json:"progress"`
}

// Dashboard computes the cross-collection overview.
func (s *Store) Dashboard() (DashboardStats, error) {
	projects, err := s.Projects()
	if err != nil {
		return DashboardStats{}, err
	}
	clients, err := s.Clients()
	if err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	stats.Clients = len(clients)
	for _, p := range projects {
		if p.Status == constants.ProjectActive {
			stats.ActiveProjects++
		}
		for _, t := range p.Tasks {
			stats.TotalHours += t.TimeSpent
			stats.TotalTasks++
			switch t.Status {
			case constants.TaskTodo:
				stats.TasksTodo++
			case constants.TaskInProgress:
				stats.TasksInProgress++
			case constants.TaskDone:
				stats.TasksDone++
			}
		}
	}
	return stats, nil
}

// ProjectBoard computes one project's task statistics.
func (s *Store) ProjectBoard(projectID int64) (ProjectStats, error) {
	p, err := s.Project(projectID)
	if err != nil {
		return ProjectStats{}, err
	}

	var stats ProjectStats
	stats.TotalTasks = len(p.Tasks)
	for _, t := range p.Tasks {
		stats.TotalTime += t.TimeSpent
		switch t.Status {
		case constants.TaskTodo:
			stats.TasksTodo++
		case constants.TaskInProgress:
			stats.TasksInProgress++
		case constants.TaskDone:
			stats.TasksDone++
		}
	}
	if stats.TotalTasks > 0 {
		stats.Progress = int(math.Round(float64(stats.TasksDone) / float64(stats.TotalTasks) * 100))
	}
	return stats, nil
}
