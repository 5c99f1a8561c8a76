package api

import (
	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

type checklistItemResp struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type eventResp struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	Institution       string                     `json:"institution"`
	Description       string                     `json:"description"`
	Category          model.Category             `json:"category"`
	CategoryLabel     string                     `json:"category_label"`
	Deadline          date                       `json:"deadline"`
	Priority          model.Priority             `json:"priority"`
	Completed         bool                       `json:"completed"`
	Progress          int                        `json:"progress"`
	Requirements      []string                   `json:"requirements"`
	Checklist         []checklistItemResp        `json:"checklist"`
	ApplicationURL    string                     `json:"application_url,omitempty"`
	DaysLeft          int                        `json:"days_left"`
	Urgency           deadline.Urgency           `json:"urgency"`
	Remaining         string                     `json:"remaining"`
	ChecklistProgress deadline.ChecklistProgress `json:"checklist_progress"`
}

func mapToEventResp(a *deadline.Annotated) (*eventResp, error) {
	checklist := make([]checklistItemResp, len(a.Event.Checklist))
	for i, c := range a.Event.Checklist {
		checklist[i] = checklistItemResp{
			Task:      c.Task,
			Completed: c.Completed,
		}
	}

	requirements := a.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	return &eventResp{
		ID:                a.ID,
		Title:             a.Title,
		Institution:       a.Institution,
		Description:       a.Description,
		Category:          a.Category,
		CategoryLabel:     a.Category.Label(),
		Deadline:          date(a.Deadline),
		Priority:          a.Priority,
		Completed:         a.Completed,
		Progress:          a.Progress,
		Requirements:      requirements,
		Checklist:         checklist,
		ApplicationURL:    a.ApplicationURL,
		DaysLeft:          a.DaysLeft,
		Urgency:           a.Urgency,
		Remaining:         a.Remaining,
		ChecklistProgress: a.Checklist,
	}, nil
}

type checklistItemReq struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func mapToChecklist(items []checklistItemReq) []model.ChecklistItem {
	if items == nil {
		return nil
	}

	res := make([]model.ChecklistItem, len(items))
	for i, c := range items {
		res[i] = model.ChecklistItem{
			Task:      c.Task,
			Completed: c.Completed,
		}
	}
	return res
}
