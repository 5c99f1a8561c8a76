// Package seed reads an initial event set from a YAML file.
package seed

import (
	"fmt"
	"os"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"gopkg.in/yaml.v3"
)

type file struct {
	Events []*eventEntry `yaml:"events"`
}

type eventEntry struct {
	ID             string                `yaml:"id"`
	Title          string                `yaml:"title"`
	Institution    string                `yaml:"institution"`
	Description    string                `yaml:"description"`
	Category       model.Category        `yaml:"category"`
	Deadline       string                `yaml:"deadline"`
	Priority       model.Priority        `yaml:"priority"`
	Completed      bool                  `yaml:"completed"`
	Progress       int                   `yaml:"progress"`
	Requirements   []string              `yaml:"requirements"`
	Checklist      []model.ChecklistItem `yaml:"checklist"`
	ApplicationURL string                `yaml:"application_url"`
}

// Load parses the seed file at path. Field validation is left to the event store.
func Load(path string) ([]*model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) ([]*model.Event, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	res := make([]*model.Event, len(f.Events))
	for i, e := range f.Events {
		deadline, err := model.ParseDate(e.Deadline)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): invalid deadline %q", i, e.Title, e.Deadline)
		}

		priority := e.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}

		requirements := e.Requirements
		if requirements == nil {
			requirements = []string{}
		}
		checklist := e.Checklist
		if checklist == nil {
			checklist = []model.ChecklistItem{}
		}

		res[i] = &model.Event{
			ID:             e.ID,
			Title:          e.Title,
			Institution:    e.Institution,
			Description:    e.Description,
			Category:       e.Category,
			Deadline:       deadline,
			Priority:       priority,
			Completed:      e.Completed,
			Progress:       e.Progress,
			Requirements:   requirements,
			Checklist:      checklist,
			ApplicationURL: e.ApplicationURL,
		}
	}

	return res, nil
}
