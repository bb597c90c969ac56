package crud

import (
	"context"

	"github.com/katzedaze/portfolio/pkg/apiclient"
)

// ControllerOptions configures a Controller for one resource type.
type ControllerOptions[T Item, F any] struct {
	Client       *apiclient.Client
	ResourcePath string
	// InitialFormData is the draft used for create mode and after reset.
	InitialFormData F
	// ItemToForm projects an item onto its editable fields.
	ItemToForm func(item T) F
	// FormToPayload builds the request body. It receives the current item
	// list so create mode can append to the end of the display order.
	FormToPayload func(form F, isEditing bool, items []T) map[string]any
	Messages      Messages
	Notifier      Notifier
	Confirm       ConfirmFunc
	// OnFetchSuccess, if set, observes every successful list fetch.
	OnFetchSuccess func(items []T)
}

// Controller binds a list of items to a single edit/create modal form and
// orchestrates fetch, submit, delete and the modal lifecycle. It owns its
// state exclusively and is driven from a single event loop; it is not safe
// for concurrent use.
type Controller[T Item, F any] struct {
	opts ControllerOptions[T, F]

	items      []T
	editing    *T
	formData   F
	isLoading  bool
	isFetching bool
	dialogOpen bool
}

func NewController[T Item, F any](opts ControllerOptions[T, F]) *Controller[T, F] {
	return &Controller[T, F]{
		opts:       opts,
		formData:   opts.InitialFormData,
		isFetching: true,
	}
}

// FetchItems replaces the item list with the server's authoritative state.
// A failed fetch keeps the current list so a transient error does not blank
// the page, but still completes the initial-fetch phase.
func (c *Controller[T, F]) FetchItems(ctx context.Context) {
	defer func() { c.isFetching = false }()

	var items []T
	if err := c.opts.Client.Get(ctx, c.opts.ResourcePath, &items); err != nil {
		if apiErr, ok := apiclient.AsError(err); ok {
			c.opts.Notifier.Error("データの取得に失敗しました: " + apiErr.Message)
		} else {
			c.opts.Notifier.Error("データの取得に失敗しました")
		}
		return
	}

	c.items = items
	if c.opts.OnFetchSuccess != nil {
		c.opts.OnFetchSuccess(items)
	}
}

// HandleSubmit persists the current form draft: PUT when an item is being
// edited, POST otherwise. On success the modal closes, the form resets and
// the list is refetched. On failure the modal stays open so the user can
// correct the input.
func (c *Controller[T, F]) HandleSubmit(ctx context.Context) {
	c.isLoading = true
	defer func() { c.isLoading = false }()

	isEditing := c.editing != nil
	payload := c.opts.FormToPayload(c.formData, isEditing, c.items)

	var err error
	if isEditing {
		err = c.opts.Client.Put(ctx, c.opts.ResourcePath+"/"+(*c.editing).ItemID(), payload, nil)
	} else {
		err = c.opts.Client.Post(ctx, c.opts.ResourcePath, payload, nil)
	}

	if err != nil {
		if apiErr, ok := apiclient.AsError(err); ok && len(apiErr.Details) > 0 {
			c.opts.Notifier.Error("入力エラー: " + apiErr.Details[0].Message)
		} else if ok {
			c.opts.Notifier.Error(apiErr.Message)
		} else if isEditing {
			c.opts.Notifier.Error(c.opts.Messages.updateError())
		} else {
			c.opts.Notifier.Error(c.opts.Messages.createError())
		}
		return
	}

	if isEditing {
		c.opts.Notifier.Success(c.opts.Messages.Update)
	} else {
		c.opts.Notifier.Success(c.opts.Messages.Create)
	}
	c.dialogOpen = false
	c.ResetForm()
	c.FetchItems(ctx)
}

// HandleEdit switches the modal into edit mode for the given item.
func (c *Controller[T, F]) HandleEdit(item T) {
	c.editing = &item
	c.formData = c.opts.ItemToForm(item)
	c.dialogOpen = true
}

// HandleDelete asks for confirmation and deletes the item. There is no
// optimistic removal; the list is refetched after a successful delete.
func (c *Controller[T, F]) HandleDelete(ctx context.Context, id string) {
	if !c.opts.Confirm(c.opts.Messages.deleteConfirm()) {
		return
	}

	if err := c.opts.Client.Delete(ctx, c.opts.ResourcePath+"/"+id, nil); err != nil {
		if apiErr, ok := apiclient.AsError(err); ok {
			c.opts.Notifier.Error(c.opts.Messages.deleteError() + ": " + apiErr.Message)
		} else {
			c.opts.Notifier.Error(c.opts.Messages.deleteError())
		}
		return
	}

	c.opts.Notifier.Success(c.opts.Messages.Delete)
	c.FetchItems(ctx)
}

// ResetForm clears edit mode and restores the initial draft.
func (c *Controller[T, F]) ResetForm() {
	c.editing = nil
	c.formData = c.opts.InitialFormData
}

// OpenCreateDialog opens the modal in create mode.
func (c *Controller[T, F]) OpenCreateDialog() {
	c.ResetForm()
	c.dialogOpen = true
}

func (c *Controller[T, F]) Items() []T { return c.items }

func (c *Controller[T, F]) SetItems(v []T) { c.items = v }

func (c *Controller[T, F]) EditingItem() (T, bool) {
	if c.editing == nil {
		var zero T
		return zero, false
	}
	return *c.editing, true
}

func (c *Controller[T, F]) FormData() F { return c.formData }

func (c *Controller[T, F]) SetFormData(v F) { c.formData = v }

func (c *Controller[T, F]) IsLoading() bool { return c.isLoading }

func (c *Controller[T, F]) IsFetching() bool { return c.isFetching }

func (c *Controller[T, F]) IsDialogOpen() bool { return c.dialogOpen }

func (c *Controller[T, F]) SetDialogOpen(v bool) { c.dialogOpen = v }
