package disk

import (
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

// eventDTO is the on-disk shape of an event; the deadline is kept as YYYY-MM-DD.
type eventDTO struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Institution    string                `json:"institution"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Deadline       string                `json:"deadline"`
	Priority       string                `json:"priority"`
	Completed      bool                  `json:"completed"`
	Progress       int                   `json:"progress"`
	Requirements   []string              `json:"requirements"`
	Checklist      []model.ChecklistItem `json:"checklist"`
	ApplicationURL string                `json:"application_url,omitempty"`
}

func mapToEventDTO(e *model.Event) *eventDTO {
	return &eventDTO{
		ID:             e.ID,
		Title:          e.Title,
		Institution:    e.Institution,
		Description:    e.Description,
		Category:       string(e.Category),
		Deadline:       e.Deadline.Format(model.DateFormat),
		Priority:       string(e.Priority),
		Completed:      e.Completed,
		Progress:       e.Progress,
		Requirements:   e.Requirements,
		Checklist:      e.Checklist,
		ApplicationURL: e.ApplicationURL,
	}
}

func mapToEvent(dto *eventDTO) (*model.Event, error) {
	deadline, err := model.ParseDate(dto.Deadline)
	if err != nil {
		return nil, err
	}

	requirements := dto.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	checklist := dto.Checklist
	if checklist == nil {
		checklist = []model.ChecklistItem{}
	}

	return &model.Event{
		ID:             dto.ID,
		Title:          dto.Title,
		Institution:    dto.Institution,
		Description:    dto.Description,
		Category:       model.Category(dto.Category),
		Deadline:       deadline,
		Priority:       model.Priority(dto.Priority),
		Completed:      dto.Completed,
		Progress:       dto.Progress,
		Requirements:   requirements,
		Checklist:      checklist,
		ApplicationURL: dto.ApplicationURL,
	}, nil
}
