// Package crud contains the generic admin-side orchestration for portfolio
// resources: a modal-backed create/read/update/delete controller and a
// drag-reorder controller that rewrites the persisted display order. Both are
// parameterized by the resource's item and form shapes and speak to the API
// through pkg/apiclient.
package crud

// Item is any persisted resource managed by the controllers.
type Item interface {
	ItemID() string
	ItemDisplayOrder() int
}

// Notifier receives user-facing success/failure notifications. Controllers
// never return errors from their operations; every failure is converted into
// a notification.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(message string) bool

// Messages holds the user-facing strings for a resource.
type Messages struct {
	Create        string
	Update        string
	Delete        string
	CreateError   string
	UpdateError   string
	DeleteError   string
	DeleteConfirm string
}

func (m Messages) createError() string {
	if m.CreateError != "" {
		return m.CreateError
	}
	return "保存に失敗しました"
}

func (m Messages) updateError() string {
	if m.UpdateError != "" {
		return m.UpdateError
	}
	return "更新に失敗しました"
}

func (m Messages) deleteError() string {
	if m.DeleteError != "" {
		return m.DeleteError
	}
	return "削除に失敗しました"
}

func (m Messages) deleteConfirm() string {
	if m.DeleteConfirm != "" {
		return m.DeleteConfirm
	}
	return "本当に削除しますか？"
}
