package crud

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katzedaze/portfolio/pkg/apiclient"
)

// DragEndEvent reports a completed drag gesture. An empty OverID means the
// item was dropped outside any valid target.
type DragEndEvent struct {
	ActiveID string
	OverID   string
}

// ReorderOptions configures a Reorderer for one resource type.
type ReorderOptions[T Item] struct {
	Client *apiclient.Client
	// Items and SetItems share the list with the owning CRUD controller.
	Items    func() []T
	SetItems func(items []T)
	// UpdateURL is the per-item PUT endpoint with an {id} placeholder.
	UpdateURL string
	// UpdateData supplies the non-order fields the server's PUT contract
	// requires; the schema has no partial update of displayOrder alone.
	UpdateData func(item T) map[string]any
	Notifier   Notifier
	// OnError, if set, fires once after any persistence failure.
	// Conventionally it refetches the list to discard the optimistic
	// reordering.
	OnError func()
}

// Reorderer translates a drag gesture into an immediate local reordering and
// a persistence pass that rewrites every item's displayOrder to its new
// zero-based index.
type Reorderer[T Item] struct {
	opts ReorderOptions[T]
}

func NewReorderer[T Item](opts ReorderOptions[T]) *Reorderer[T] {
	return &Reorderer[T]{opts: opts}
}

// HandleDragEnd applies the move locally, then issues one PUT per item,
// all concurrently, and reports a single success or failure notification.
// Some of the writes may have succeeded when others fail; recovery is left
// to OnError, which rebuilds the list from server truth.
func (r *Reorderer[T]) HandleDragEnd(ctx context.Context, event DragEndEvent) {
	if event.OverID == "" || event.ActiveID == event.OverID {
		return
	}

	items := r.opts.Items()
	oldIndex := indexOf(items, event.ActiveID)
	newIndex := indexOf(items, event.OverID)
	if oldIndex < 0 || newIndex < 0 {
		return
	}

	newItems := arrayMove(items, oldIndex, newIndex)
	r.opts.SetItems(newItems)

	var g errgroup.Group
	for i, item := range newItems {
		url := strings.ReplaceAll(r.opts.UpdateURL, "{id}", item.ItemID())
		payload := map[string]any{}
		for k, v := range r.opts.UpdateData(item) {
			payload[k] = v
		}
		payload["displayOrder"] = i
		g.Go(func() error {
			return r.opts.Client.Put(ctx, url, payload, nil)
		})
	}

	if err := g.Wait(); err != nil {
		if apiErr, ok := apiclient.AsError(err); ok {
			r.opts.Notifier.Error("表示順序の更新に失敗しました: " + apiErr.Message)
		} else {
			r.opts.Notifier.Error("表示順序の更新に失敗しました")
		}
		if r.opts.OnError != nil {
			r.opts.OnError()
		}
		return
	}

	r.opts.Notifier.Success("表示順序を更新しました")
}

func indexOf[T Item](items []T, id string) int {
	for i, item := range items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}

// arrayMove returns a new slice with the element at from reinserted at to.
// Items strictly between the two positions shift by one slot.
func arrayMove[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = slices.Insert(out, to, moved)
	return out
}
