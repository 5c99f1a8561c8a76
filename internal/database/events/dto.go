package events

import (
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

type eventDTO struct {
	ID             string
	Title          string
	Institution    string
	Description    string
	Category       string
	Deadline       time.Time
	Priority       string
	Completed      bool
	Progress       int
	Requirements   []string
	Checklist      []*checklistItemDTO
	ApplicationURL string `db:"application_url"`
}

type checklistItemDTO struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func mapToEvent(dto *eventDTO) *model.Event {
	checklist := make([]model.ChecklistItem, len(dto.Checklist))
	for i, c := range dto.Checklist {
		checklist[i] = model.ChecklistItem{
			Task:      c.Task,
			Completed: c.Completed,
		}
	}

	requirements := dto.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	return &model.Event{
		ID:             dto.ID,
		Title:          dto.Title,
		Institution:    dto.Institution,
		Description:    dto.Description,
		Category:       model.Category(dto.Category),
		Deadline:       model.Date(dto.Deadline),
		Priority:       model.Priority(dto.Priority),
		Completed:      dto.Completed,
		Progress:       dto.Progress,
		Requirements:   requirements,
		Checklist:      checklist,
		ApplicationURL: dto.ApplicationURL,
	}
}

func mapToChecklistDTO(items []model.ChecklistItem) []*checklistItemDTO {
	res := make([]*checklistItemDTO, len(items))
	for i, c := range items {
		res[i] = &checklistItemDTO{
			Task:      c.Task,
			Completed: c.Completed,
		}
	}
	return res
}
