package usecase

import (
	"context"
	"strings"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner"
	"weekly-planner/pkg/dates"
)

const defaultItemWindowDays = 7

// ItemsWithinDays returns planner items dated on or after today − (days−1),
// i.e. a rolling window ending today. Items whose date does not parse are
// excluded silently. Storage order is preserved.
func (uc *implUseCase) ItemsWithinDays(ctx context.Context, days int) []model.PlannerItem {
	if days < 1 {
		days = defaultItemWindowDays
	}

	cutoffKey := dates.AddDays(uc.todayKey(), -(days - 1))
	cutoff, err := dates.ParseDateKey(cutoffKey)
	if err != nil {
		return []model.PlannerItem{}
	}

	items := uc.repo.ListItems(ctx)
	out := make([]model.PlannerItem, 0, len(items))
	for _, item := range items {
		day, err := dates.ParseDateKey(item.Date)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			out = append(out, item)
		}
	}
	return out
}

// AddItem appends a planner entry to the flat list. An empty date means
// today.
func (uc *implUseCase) AddItem(ctx context.Context, input planner.AddItemInput) (planner.AddItemOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return planner.AddItemOutput{}, planner.ErrEmptyTitle
	}

	date := input.Date
	if date == "" {
		date = uc.todayKey()
	} else if _, err := dates.ParseDateKey(date); err != nil {
		return planner.AddItemOutput{}, planner.ErrInvalidDate
	}

	item := model.PlannerItem{
		ID:    uc.newID("p"),
		Title: title,
		Date:  date,
		Note:  strings.TrimSpace(input.Note),
	}

	err := uc.repo.UpdateItems(ctx, func(items []model.PlannerItem) []model.PlannerItem {
		return append(items, item)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddItem: persist items: %v", err)
		return planner.AddItemOutput{}, nil
	}

	uc.l.Infof(ctx, "uc.AddItem: added %s for %s", item.ID, item.Date)
	return planner.AddItemOutput{OK: true, Item: item}, nil
}

// ToggleItemDone flips a planner item's done flag.
func (uc *implUseCase) ToggleItemDone(ctx context.Context, id string) planner.ToggleItemOutput {
	var out planner.ToggleItemOutput

	err := uc.repo.UpdateItems(ctx, func(items []model.PlannerItem) []model.PlannerItem {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Done = !items[i].Done
			out.OK = true
			out.Done = items[i].Done
			break
		}
		return items
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleItemDone: persist items: %v", err)
		return planner.ToggleItemOutput{}
	}

	return out
}
