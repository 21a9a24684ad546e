package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"weekly-planner/internal/model"
)

// ListItems returns the flat planner item list. Missing or malformed
// storage reads as empty; this method never fails.
func (r *Repository) ListItems(ctx context.Context) []model.PlannerItem {
	return r.readItems(ctx)
}

// UpdateItems applies mutate to the current list and persists the result.
// Serialized on the single items key.
func (r *Repository) UpdateItems(ctx context.Context, mutate func([]model.PlannerItem) []model.PlannerItem) error {
	lock := r.lockFor(plannerItemsKey)
	lock.Lock()
	defer lock.Unlock()

	items := mutate(r.readItems(ctx))

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal planner items: %w", err)
	}
	if err := r.store.Set(plannerItemsKey, data); err != nil {
		return fmt.Errorf("save planner items: %w", err)
	}
	return nil
}

func (r *Repository) readItems(ctx context.Context) []model.PlannerItem {
	data, ok := r.store.Get(plannerItemsKey)
	if !ok {
		return []model.PlannerItem{}
	}

	var items []model.PlannerItem
	if err := json.Unmarshal(data, &items); err != nil {
		r.l.Warnf(ctx, "kv.readItems: malformed record at %s, treating as empty: %v", plannerItemsKey, err)
		return []model.PlannerItem{}
	}
	return items
}
