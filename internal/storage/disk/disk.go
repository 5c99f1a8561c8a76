// Package disk keeps events and preferences as JSON documents in a local diskv store.
package disk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/peterbourgon/diskv/v3"
)

const (
	eventsKey      = "events"
	preferencesKey = "preferences"
)

type Store struct {
	d *diskv.Diskv
}

func New(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *Store) GetEvents(_ context.Context) ([]*model.Event, error) {
	if !s.d.Has(eventsKey) {
		return []*model.Event{}, nil
	}

	val, err := s.d.Read(eventsKey)
	if err != nil {
		return nil, fmt.Errorf("diskv.Read: %w", err)
	}

	var dtos []*eventDTO
	if err := json.Unmarshal(val, &dtos); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	res := make([]*model.Event, 0, len(dtos))
	for _, d := range dtos {
		e, err := mapToEvent(d)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", d.ID, err)
		}
		res = append(res, e)
	}

	return res, nil
}

func (s *Store) SaveEvents(_ context.Context, events []*model.Event) error {
	dtos := make([]*eventDTO, len(events))
	for i, e := range events {
		dtos[i] = mapToEventDTO(e)
	}

	val, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	if err := s.d.Write(eventsKey, val); err != nil {
		return fmt.Errorf("diskv.Write: %w", err)
	}

	return nil
}

func (s *Store) GetPreferences(_ context.Context) (*model.NotificationPreferences, error) {
	if !s.d.Has(preferencesKey) {
		return nil, model.ErrNoRecord
	}

	val, err := s.d.Read(preferencesKey)
	if err != nil {
		return nil, fmt.Errorf("diskv.Read: %w", err)
	}

	var prefs model.NotificationPreferences
	if err := json.Unmarshal(val, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}

	return &prefs, nil
}

func (s *Store) SavePreferences(_ context.Context, prefs *model.NotificationPreferences) error {
	val, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := s.d.Write(preferencesKey, val); err != nil {
		return fmt.Errorf("diskv.Write: %w", err)
	}

	return nil
}
