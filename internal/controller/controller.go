// Package controller implements the reusable shape behind every entity
// page: fetch on mount, client-side search and facet filtering, dialog
// driven create/edit/delete, and binary exports. One generic List plus a
// small per-entity Config replaces the per-page boilerplate.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/buildmaintain/bm/internal/apiclient"
	"github.com/buildmaintain/bm/internal/notify"
)

// SkeletonCount is the fixed number of placeholder rows shown while the
// first fetch is pending. It is deliberately not derived from eventual data.
const SkeletonCount = 6

// FacetAll bypasses the status/category facet filter.
const FacetAll = "all"

// Backend is what the controller needs from a gateway. The generic
// gateway.Resource satisfies it.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	CreateFields(ctx context.Context, fields map[string]any) (T, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (T, error)
	Delete(ctx context.Context, id string) error
}

// SnapshotSaver persists the last fetched list for offline inspection.
type SnapshotSaver interface {
	SaveListSnapshot(ctx context.Context, resource string, payload []byte) error
}

// Config parameterizes a List for one entity.
type Config[T any] struct {
	// Name is the human entity name used in notifications ("building").
	Name string
	// ID extracts the server-assigned identifier.
	ID func(T) string
	// SearchFields extracts the display fields matched by free-text search.
	SearchFields func(T) []string
	// Facet extracts the value compared against the selected facet filter.
	Facet func(T) string
	// Defaults seeds a create dialog, matching how the entity's form opens
	// (preset currency, empty line-item lists and the like). Nil starts
	// from a bare draft.
	Defaults func() map[string]any
	// FormFromItem seeds an edit dialog from an existing record, pruning
	// server-only fields. Nil disables editing.
	FormFromItem func(T) map[string]any
	// ValidateForm gates submission client-side. Nil skips validation; the
	// server stays authoritative either way.
	ValidateForm func(fields map[string]any) error
}

// List orchestrates one entity page. It is not safe for concurrent use by
// multiple goroutines driving mutations, matching the single event flow it
// models, but completion of in-flight fetches after Close is tolerated.
type List[T any] struct {
	cfg      Config[T]
	backend  Backend[T]
	notifier notify.Notifier

	// Snapshots, when set, receives the raw payload of every successful
	// fetch keyed by the entity name.
	Snapshots SnapshotSaver

	mu        sync.Mutex
	items     []T
	search    string
	facet     string
	loading   bool
	closed    bool
	dialog    bool
	draft     map[string]any
	editingID string
}

// New builds a controller for one entity page.
func New[T any](cfg Config[T], backend Backend[T], notifier notify.Notifier) *List[T] {
	return &List[T]{cfg: cfg, backend: backend, notifier: notifier, facet: FacetAll}
}

// Load fetches the collection. While pending, IsLoading reports true. A
// response that lands after Close is discarded without touching state.
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.loading = true
	l.mu.Unlock()

	items, err := l.backend.List(ctx)

	l.mu.Lock()
	l.loading = false
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	if err == nil {
		l.items = items
	}
	l.mu.Unlock()

	if err != nil {
		l.notifyError(err, fmt.Sprintf("Failed to fetch %ss", l.cfg.Name))
		return err
	}

	if l.Snapshots != nil {
		if payload, merr := json.Marshal(items); merr == nil {
			_ = l.Snapshots.SaveListSnapshot(ctx, l.cfg.Name, payload)
		}
	}
	return nil
}

// IsLoading reports whether a fetch is pending.
func (l *List[T]) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Items returns the full fetched list.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// SetSearch updates the free-text filter. The view recomputes on the next
// Visible call; the source list is never altered.
func (l *List[T]) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = term
}

// SetFacet updates the status/category filter. FacetAll bypasses it.
func (l *List[T]) SetFacet(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if value == "" {
		value = FacetAll
	}
	l.facet = value
}

// Visible derives the filtered view: a case-insensitive substring match
// against the display fields, then a facet equality match. Filtering is
// pure; it always yields a subset of the fetched list.
func (l *List[T]) Visible() []T {
	l.mu.Lock()
	items := l.items
	search := strings.ToLower(strings.TrimSpace(l.search))
	facet := l.facet
	l.mu.Unlock()

	out := make([]T, 0, len(items))
	for _, item := range items {
		if search != "" && !l.matchesSearch(item, search) {
			continue
		}
		if facet != FacetAll && l.cfg.Facet != nil && l.cfg.Facet(item) != facet {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *List[T]) matchesSearch(item T, search string) bool {
	if l.cfg.SearchFields == nil {
		return true
	}
	for _, field := range l.cfg.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// BeginCreate opens the dialog with a fresh draft seeded from the entity's
// defaults.
func (l *List[T]) BeginCreate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialog = true
	l.editingID = ""
	l.draft = map[string]any{}
	if l.cfg.Defaults != nil {
		for k, v := range l.cfg.Defaults() {
			l.draft[k] = v
		}
	}
}

// BeginEdit opens the dialog seeded from the identified record.
func (l *List[T]) BeginEdit(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg.FormFromItem == nil {
		return fmt.Errorf("%s does not support editing", l.cfg.Name)
	}
	for _, item := range l.items {
		if l.cfg.ID(item) == id {
			l.dialog = true
			l.editingID = id
			l.draft = l.cfg.FormFromItem(item)
			return nil
		}
	}
	return fmt.Errorf("%s %s not found", l.cfg.Name, id)
}

// DialogOpen reports whether a create/edit dialog is active.
func (l *List[T]) DialogOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dialog
}

// Draft returns the active dialog's fields.
func (l *List[T]) Draft() map[string]any {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]any, len(l.draft))
	for k, v := range l.draft {
		out[k] = v
	}
	return out
}

// SetField updates one draft field.
func (l *List[T]) SetField(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.draft == nil {
		l.draft = map[string]any{}
	}
	l.draft[key] = value
}

// CancelDialog discards the draft without any network call.
func (l *List[T]) CancelDialog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialog = false
	l.draft = nil
	l.editingID = ""
}

// Submit validates the draft and performs the create or update. On success
// the list is re-fetched and the dialog closes; on failure the dialog and
// draft survive so nothing the user entered is lost.
func (l *List[T]) Submit(ctx context.Context) error {
	l.mu.Lock()
	if !l.dialog {
		l.mu.Unlock()
		return fmt.Errorf("no open dialog")
	}
	fields := make(map[string]any, len(l.draft))
	for k, v := range l.draft {
		fields[k] = v
	}
	editingID := l.editingID
	l.mu.Unlock()

	if l.cfg.ValidateForm != nil {
		if err := l.cfg.ValidateForm(fields); err != nil {
			return err
		}
	}

	var err error
	if editingID == "" {
		_, err = l.backend.CreateFields(ctx, fields)
	} else {
		_, err = l.backend.UpdateFields(ctx, editingID, fields)
	}
	if err != nil {
		verb := "create"
		if editingID != "" {
			verb = "update"
		}
		l.notifyError(err, fmt.Sprintf("Failed to %s %s", verb, l.cfg.Name))
		return err
	}

	l.mu.Lock()
	l.dialog = false
	l.draft = nil
	l.editingID = ""
	l.mu.Unlock()

	if l.notifier != nil {
		verb := "created"
		if editingID != "" {
			verb = "updated"
		}
		l.notifier.Notify(notify.Notification{
			Level:    notify.LevelSuccess,
			Category: l.cfg.Name,
			Message:  fmt.Sprintf("%s %s", l.displayName(), verb),
		})
	}

	// Consistency over perceived latency: re-fetch instead of patching the
	// local list.
	return l.Load(ctx)
}

// Delete removes a record after explicit confirmation. Declining performs
// no network call.
func (l *List[T]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	if err := l.backend.Delete(ctx, id); err != nil {
		l.notifyError(err, fmt.Sprintf("Failed to delete %s", l.cfg.Name))
		return err
	}

	if l.notifier != nil {
		l.notifier.Notify(notify.Notification{
			Level:    notify.LevelSuccess,
			Category: l.cfg.Name,
			Message:  fmt.Sprintf("%s deleted", l.displayName()),
		})
	}
	return l.Load(ctx)
}

// displayName capitalizes the entity name for notification text. A zero
// Config has no name; fall back to a generic noun rather than slicing an
// empty string.
func (l *List[T]) displayName() string {
	if l.cfg.Name == "" {
		return "Record"
	}
	return strings.ToUpper(l.cfg.Name[:1]) + l.cfg.Name[1:]
}

// Close marks the page unmounted. Late responses are discarded instead of
// mutating state.
func (l *List[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// notifyError converts a gateway failure into a user-visible notification.
// Auth failures are silent here: the session store has already cleared and
// the guard redirects, which takes precedence over an action toast.
func (l *List[T]) notifyError(err error, fallback string) {
	if l.notifier == nil || apiclient.IsAuthError(err) {
		return
	}
	message := fallback
	if err != nil && err.Error() != "" {
		message = fmt.Sprintf("%s: %s", fallback, err.Error())
	}
	l.notifier.Notify(notify.Notification{
		Level:    notify.LevelError,
		Category: l.cfg.Name,
		Message:  message,
	})
}
