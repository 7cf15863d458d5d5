package page_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportreg/internal/page"
)

func TestLink_DefaultActionNavigates(t *testing.T) {
	doc := page.NewDocument("/dashboard")
	link := doc.AddLink("plain", "/elsewhere")

	var called bool
	link.OnActivate(func(ctx context.Context, ev *page.Event) { called = true })
	ev := link.Activate(context.Background())

	assert.True(t, called)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "/elsewhere", doc.Location())
}

func TestLink_PreventDefaultStaysOnPage(t *testing.T) {
	doc := page.NewDocument("/dashboard")
	link := doc.AddLink("plain", "/elsewhere")
	link.OnActivate(func(ctx context.Context, ev *page.Event) { ev.PreventDefault() })

	ev := link.Activate(context.Background())

	assert.Equal(t, "click", ev.Type)
	assert.Equal(t, "plain", ev.Target)
	assert.Equal(t, "/dashboard", doc.Location())
	assert.Empty(t, doc.Navigations())
}

func TestForm_DefaultActionSubmitsToAction(t *testing.T) {
	doc := page.NewDocument("/home")
	form := doc.AddForm("f", "/register_sport")

	ev := form.Submit(context.Background())

	assert.Equal(t, "submit", ev.Type)
	assert.Equal(t, []string{"/register_sport"}, doc.Navigations())
}

func TestForm_SetReplacesExistingField(t *testing.T) {
	doc := page.NewDocument("/home")
	form := doc.AddForm("f", "/x")
	form.Set("a", "1").Set("b", "2").Set("a", "3")

	snap := form.Snapshot()
	require.Len(t, snap.Fields, 2)
	a, ok := snap.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", a)
	assert.Equal(t, "2", snap.Values().Get("b"))
}

func TestDocument_LookupMissing(t *testing.T) {
	doc := page.NewDocument("/")
	_, err := doc.Container("nope")
	assert.ErrorIs(t, err, page.ErrMissingElement)
	_, err = doc.Link("nope")
	assert.ErrorIs(t, err, page.ErrMissingElement)
	_, err = doc.Form("nope")
	assert.ErrorIs(t, err, page.ErrMissingElement)
}

func TestDocument_ReadyRunsAllCallbacks(t *testing.T) {
	doc := page.NewDocument("/")
	boom := errors.New("boom")
	var order []int
	doc.OnReady(func(ctx context.Context, d *page.Document) error { order = append(order, 1); return boom })
	doc.OnReady(func(ctx context.Context, d *page.Document) error { order = append(order, 2); return nil })

	err := doc.Ready(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2}, order)
}

func TestDocument_WaitDrainsTasksAndTimeouts(t *testing.T) {
	clock := &fakeClock{}
	doc := page.NewDocument("/", page.WithClock(clock))

	done := make(chan struct{})
	doc.Go(func() {
		doc.SetTimeout(0, func() { close(done) })
	})
	doc.Flush()
	clock.Advance(0)
	doc.Wait()

	select {
	case <-done:
	default:
		t.Fatal("timeout callback did not run")
	}
}
