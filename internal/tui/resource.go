package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katzedaze/portfolio/pkg/apiclient"
	"github.com/katzedaze/portfolio/pkg/crud"
)

// Field describes one editable form field of a resource.
type Field[F any] struct {
	Label       string
	Placeholder string
	Get         func(form F) string
	Set         func(form F, value string) F
}

// ResourceConfig binds one API resource to a generic screen.
type ResourceConfig[T crud.Item, F any] struct {
	Title         string
	Path          string
	Messages      crud.Messages
	InitialForm   F
	ItemToForm    func(item T) F
	FormToPayload func(form F, isEditing bool, items []T) map[string]any
	UpdateData    func(item T) map[string]any
	Fields        []Field[F]
	RowText       func(item T) string
}

type resourceMode int

const (
	modeList resourceMode = iota
	modeForm
	modeConfirmDelete
)

// ResourceScreen drives a crud.Controller and crud.Reorderer from
// keybindings. Controller calls run synchronously in Update, matching the
// controller's single-event-loop contract.
type ResourceScreen[T crud.Item, F any] struct {
	cfg        ResourceConfig[T, F]
	controller *crud.Controller[T, F]
	reorderer  *crud.Reorderer[T]
	notifier   *toastNotifier

	inputs    []textinput.Model
	focus     int
	cursor    int
	mode      resourceMode
	confirmed bool
	toasts    []Toast
	width     int
	height    int
}

func NewResourceScreen[T crud.Item, F any](client *apiclient.Client, cfg ResourceConfig[T, F]) *ResourceScreen[T, F] {
	s := &ResourceScreen[T, F]{
		cfg:      cfg,
		notifier: &toastNotifier{},
	}
	s.controller = crud.NewController(crud.ControllerOptions[T, F]{
		Client:          client,
		ResourcePath:    cfg.Path,
		InitialFormData: cfg.InitialForm,
		ItemToForm:      cfg.ItemToForm,
		FormToPayload:   cfg.FormToPayload,
		Messages:        cfg.Messages,
		Notifier:        s.notifier,
		Confirm:         func(string) bool { return s.confirmed },
	})
	s.reorderer = crud.NewReorderer(crud.ReorderOptions[T]{
		Client:     client,
		Items:      s.controller.Items,
		SetItems:   s.controller.SetItems,
		UpdateURL:  cfg.Path + "/{id}",
		UpdateData: cfg.UpdateData,
		Notifier:   s.notifier,
		OnError: func() {
			s.controller.FetchItems(context.Background())
		},
	})

	s.inputs = make([]textinput.Model, len(cfg.Fields))
	for i, f := range cfg.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 0
		ti.Width = 48
		s.inputs[i] = ti
	}
	return s
}

func (s *ResourceScreen[T, F]) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *ResourceScreen[T, F]) Capturing() bool {
	return s.mode != modeList
}

func (s *ResourceScreen[T, F]) Init() tea.Cmd {
	s.mode = modeList
	s.controller.FetchItems(context.Background())
	s.drainToasts()
	return nil
}

func (s *ResourceScreen[T, F]) drainToasts() {
	if t := s.notifier.Drain(); len(t) > 0 {
		s.toasts = t
	}
}

func (s *ResourceScreen[T, F]) clampCursor() {
	if n := len(s.controller.Items()); s.cursor >= n {
		s.cursor = max(0, n-1)
	}
}

func (s *ResourceScreen[T, F]) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.mode == modeForm {
			return s.updateFocusedInput(msg)
		}
		return nil
	}

	switch s.mode {
	case modeList:
		return s.handleListKey(keyMsg)
	case modeForm:
		return s.handleFormKey(keyMsg)
	case modeConfirmDelete:
		return s.handleConfirmKey(keyMsg)
	}
	return nil
}

func (s *ResourceScreen[T, F]) handleListKey(msg tea.KeyMsg) tea.Cmd {
	items := s.controller.Items()
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(items)-1 {
			s.cursor++
		}
	case "K", "shift+up":
		// Move the selected row one position up and persist the new order.
		if s.cursor > 0 {
			s.reorderer.HandleDragEnd(context.Background(), crud.DragEndEvent{
				ActiveID: items[s.cursor].ItemID(),
				OverID:   items[s.cursor-1].ItemID(),
			})
			s.cursor--
			s.drainToasts()
			s.clampCursor()
		}
	case "J", "shift+down":
		if s.cursor < len(items)-1 {
			s.reorderer.HandleDragEnd(context.Background(), crud.DragEndEvent{
				ActiveID: items[s.cursor].ItemID(),
				OverID:   items[s.cursor+1].ItemID(),
			})
			s.cursor++
			s.drainToasts()
			s.clampCursor()
		}
	case "a":
		s.controller.OpenCreateDialog()
		s.enterForm()
	case "e":
		if len(items) > 0 {
			s.controller.HandleEdit(items[s.cursor])
			s.enterForm()
		}
	case "d":
		if len(items) > 0 {
			s.mode = modeConfirmDelete
		}
	case "r":
		s.controller.FetchItems(context.Background())
		s.drainToasts()
		s.clampCursor()
	}
	return nil
}

func (s *ResourceScreen[T, F]) enterForm() {
	form := s.controller.FormData()
	for i, f := range s.cfg.Fields {
		s.inputs[i].SetValue(f.Get(form))
		s.inputs[i].Blur()
	}
	s.focus = 0
	s.inputs[0].Focus()
	s.mode = modeForm
}

func (s *ResourceScreen[T, F]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.controller.SetDialogOpen(false)
		s.controller.ResetForm()
		s.mode = modeList
		return nil
	case "tab", "down":
		s.moveFocus(1)
		return nil
	case "shift+tab", "up":
		s.moveFocus(-1)
		return nil
	case "enter":
		if s.focus < len(s.inputs)-1 {
			s.moveFocus(1)
			return nil
		}
		s.submitForm()
		return nil
	case "ctrl+s":
		s.submitForm()
		return nil
	}
	return s.updateFocusedInput(msg)
}

func (s *ResourceScreen[T, F]) moveFocus(delta int) {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *ResourceScreen[T, F]) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *ResourceScreen[T, F]) submitForm() {
	form := s.controller.FormData()
	for i, f := range s.cfg.Fields {
		form = f.Set(form, s.inputs[i].Value())
	}
	s.controller.SetFormData(form)
	s.controller.HandleSubmit(context.Background())
	s.drainToasts()
	if !s.controller.IsDialogOpen() {
		s.mode = modeList
		s.clampCursor()
	}
}

func (s *ResourceScreen[T, F]) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		items := s.controller.Items()
		if s.cursor < len(items) {
			s.confirmed = true
			s.controller.HandleDelete(context.Background(), items[s.cursor].ItemID())
			s.confirmed = false
			s.drainToasts()
			s.clampCursor()
		}
		s.mode = modeList
	case "n", "N", "esc":
		s.mode = modeList
	}
	return nil
}

func (s *ResourceScreen[T, F]) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.cfg.Title))
	b.WriteString("\n")

	switch s.mode {
	case modeForm:
		s.viewForm(&b)
	case modeConfirmDelete:
		b.WriteString(promptStyle.Render(s.cfg.Messages.DeleteConfirm + "  (y/n)"))
		b.WriteString("\n")
	default:
		s.viewList(&b)
	}

	for _, t := range s.toasts {
		if t.IsError {
			b.WriteString(errorStyle.Render(t.Text))
		} else {
			b.WriteString(successStyle.Render(t.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ResourceScreen[T, F]) viewList(b *strings.Builder) {
	items := s.controller.Items()
	if s.controller.IsFetching() {
		b.WriteString(dimStyle.Render("読み込み中..."))
		b.WriteString("\n")
		return
	}
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
		b.WriteString("\n")
	}
	for i, item := range items {
		row := fmt.Sprintf("%2d. %s", i+1, s.cfg.RowText(item))
		if i == s.cursor {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("a add · e edit · d delete · K/J reorder · r reload · tab switch · q quit"))
	b.WriteString("\n")
}

func (s *ResourceScreen[T, F]) viewForm(b *strings.Builder) {
	for i, f := range s.cfg.Fields {
		label := f.Label
		if i == s.focus {
			label = selectedRowStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter next/save · ctrl+s save · esc cancel"))
	b.WriteString("\n")
}
