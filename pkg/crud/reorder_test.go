package crud_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/pkg/apiclient"
	"github.com/katzedaze/portfolio/pkg/crud"
)

type putRecord struct {
	Path string
	Body map[string]any
}

type reorderServer struct {
	mu   sync.Mutex
	puts []putRecord
	// failIDs lists item ids whose PUT should fail with a 500.
	failIDs map[string]bool
}

func (s *reorderServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)

		s.mu.Lock()
		s.puts = append(s.puts, putRecord{Path: r.URL.Path, Body: body})
		failed := s.failIDs[strings.TrimPrefix(r.URL.Path, "/api/skills/")]
		s.mu.Unlock()

		if failed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"update failed"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
}

func (s *reorderServer) recordedPuts() []putRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]putRecord(nil), s.puts...)
}

func (s *reorderServer) orderFor(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.puts {
		if strings.HasSuffix(p.Path, "/"+id) {
			order, ok := p.Body["displayOrder"].(float64)
			return int(order), ok
		}
	}
	return 0, false
}

func newTestReorderer(t *testing.T, srv *reorderServer, initial []skillItem, onError func()) (*crud.Reorderer[skillItem], *recordingNotifier, func() []skillItem, func()) {
	t.Helper()
	ts := httptest.NewServer(srv.handler())
	notifier := &recordingNotifier{}
	items := initial
	sut := crud.NewReorderer(crud.ReorderOptions[skillItem]{
		Client:    apiclient.New(ts.URL),
		Items:     func() []skillItem { return items },
		SetItems:  func(v []skillItem) { items = v },
		UpdateURL: "/api/skills/{id}",
		UpdateData: func(item skillItem) map[string]any {
			return map[string]any{"name": item.Name}
		},
		Notifier: notifier,
		OnError:  onError,
	})
	return sut, notifier, func() []skillItem { return items }, ts.Close
}

func TestReorderer_RewritesEveryItem(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{
		{ID: "a", Name: "A", DisplayOrder: 0},
		{ID: "b", Name: "B", DisplayOrder: 1},
		{ID: "c", Name: "C", DisplayOrder: 2},
	}
	sut, notifier, items, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	// Drag A to the position after C.
	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "a", OverID: "c"})

	got := items()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})

	require.Len(t, srv.recordedPuts(), 3, "every item is rewritten, not just the moved one")
	for id, want := range map[string]int{"b": 0, "c": 1, "a": 2} {
		order, ok := srv.orderFor(id)
		require.True(t, ok, "expected a PUT for %s", id)
		assert.Equal(t, want, order, "order for %s", id)
	}
	assert.Equal(t, []string{"表示順序を更新しました"}, notifier.successes)
}

func TestReorderer_DropOutsideTargetIsNoOp(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{
		{ID: "a", Name: "A", DisplayOrder: 0},
		{ID: "b", Name: "B", DisplayOrder: 1},
	}
	sut, notifier, items, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "a", OverID: ""})

	assert.Empty(t, srv.recordedPuts())
	assert.Equal(t, initial, items())
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestReorderer_DropOnSelfIsNoOp(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{
		{ID: "a", Name: "A", DisplayOrder: 0},
		{ID: "b", Name: "B", DisplayOrder: 1},
	}
	sut, notifier, items, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "b", OverID: "b"})

	assert.Empty(t, srv.recordedPuts())
	assert.Equal(t, initial, items())
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestReorderer_UnknownIDIsNoOp(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{{ID: "a", Name: "A", DisplayOrder: 0}}
	sut, notifier, items, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "missing", OverID: "a"})

	assert.Empty(t, srv.recordedPuts())
	assert.Equal(t, initial, items())
	assert.Empty(t, notifier.errors)
}

func TestReorderer_PartialFailureFiresOnErrorOnce(t *testing.T) {
	srv := &reorderServer{failIDs: map[string]bool{"b": true}}
	initial := []skillItem{
		{ID: "a", Name: "A", DisplayOrder: 0},
		{ID: "b", Name: "B", DisplayOrder: 1},
		{ID: "c", Name: "C", DisplayOrder: 2},
	}
	var onErrorCalls atomic.Int32
	sut, notifier, _, cleanup := newTestReorderer(t, srv, initial, func() {
		onErrorCalls.Add(1)
	})
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "c", OverID: "a"})

	assert.Len(t, srv.recordedPuts(), 3, "all writes are issued even when one fails")
	assert.Equal(t, int32(1), onErrorCalls.Load(), "onError fires exactly once")
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "表示順序の更新に失敗しました: update failed", notifier.errors[0])
	assert.Empty(t, notifier.successes)
}

func TestReorderer_MergesUpdateDataWithNewOrder(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{
		{ID: "a", Name: "A", DisplayOrder: 0},
		{ID: "b", Name: "B", DisplayOrder: 1},
	}
	sut, _, _, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "b", OverID: "a"})

	for _, p := range srv.recordedPuts() {
		assert.Contains(t, p.Body, "name", "non-order fields travel with every reorder PUT")
		assert.Contains(t, p.Body, "displayOrder")
	}
}

// Mirrors the end-to-end scenario: two skills, React is dragged before
// TypeScript, both rows are rewritten and the local order flips.
func TestReorderer_EndToEnd_TwoSkills(t *testing.T) {
	srv := &reorderServer{}
	initial := []skillItem{
		{ID: "1", Name: "TypeScript", DisplayOrder: 0},
		{ID: "2", Name: "React", DisplayOrder: 1},
	}
	sut, notifier, items, cleanup := newTestReorderer(t, srv, initial, nil)
	defer cleanup()

	sut.HandleDragEnd(context.Background(), crud.DragEndEvent{ActiveID: "2", OverID: "1"})

	require.Len(t, srv.recordedPuts(), 2)
	order2, ok := srv.orderFor("2")
	require.True(t, ok)
	assert.Equal(t, 0, order2)
	order1, ok := srv.orderFor("1")
	require.True(t, ok)
	assert.Equal(t, 1, order1)

	got := items()
	assert.Equal(t, []string{"React", "TypeScript"}, []string{got[0].Name, got[1].Name})
	assert.Equal(t, []string{"表示順序を更新しました"}, notifier.successes)
}
