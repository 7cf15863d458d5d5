package page_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportreg/internal/domain"
	"sportreg/internal/flash"
	"sportreg/internal/page"
)

// newLogoutPage builds a dashboard-like page with the logout link bound.
func newLogoutPage(t *testing.T, client *stubClient) (*page.Document, *fakeClock, *flash.Container) {
	t.Helper()
	clock := &fakeClock{}
	doc := page.NewDocument("/dashboard", page.WithClock(clock))
	container := doc.AddContainer(flash.ContainerID)
	doc.AddLink(page.LogoutLinkID, "/logout")
	page.BindLogout(doc, client, 0)
	require.NoError(t, doc.Ready(context.Background()))
	return doc, clock, container
}

// newRegistrationPage builds the sports page with the registration form bound.
func newRegistrationPage(t *testing.T, client *stubClient) (*page.Document, *page.Form, *flash.Container) {
	t.Helper()
	doc := page.NewDocument("/home", page.WithClock(&fakeClock{}))
	container := doc.AddContainer(flash.ContainerID)
	form := doc.AddForm(page.RegisterFormID, "/register_sport")
	page.BindRegistration(doc, client)
	require.NoError(t, doc.Ready(context.Background()))
	return doc, form, container
}

func onlyChild(t *testing.T, c *flash.Container) flash.Element {
	t.Helper()
	children := c.Children()
	require.Len(t, children, 1)
	return children[0]
}

func TestLogout_SuccessRendersWithoutNavigating(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Notification{Status: "success", Message: "Goodbye"}})
	doc, clock, container := newLogoutPage(t, client)

	link, err := doc.Link(page.LogoutLinkID)
	require.NoError(t, err)
	ev := link.Activate(context.Background())
	doc.Wait()

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, client.Logouts())
	el := onlyChild(t, container)
	assert.Equal(t, "Goodbye", el.Text)
	assert.True(t, el.HasClass("success"))
	assert.Zero(t, clock.Pending())
	assert.Empty(t, doc.Navigations())
	assert.Equal(t, "/dashboard", doc.Location())
}

func TestLogout_InfoRedirectsAfterDelay(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Info("Signed out")})
	doc, clock, container := newLogoutPage(t, client)

	link, err := doc.Link(page.LogoutLinkID)
	require.NoError(t, err)
	link.Activate(context.Background())
	doc.Flush()

	assert.Equal(t, "Signed out", onlyChild(t, container).Text)
	assert.Equal(t, 1, client.Logouts())

	clock.Advance(999 * time.Millisecond)
	assert.Empty(t, doc.Navigations(), "redirected before the delay elapsed")

	clock.Advance(time.Millisecond)
	doc.Wait()
	if diff := cmp.Diff([]string{page.LoginPath}, doc.Navigations()); diff != "" {
		t.Fatalf("navigations mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/login", doc.Location())
}

func TestLogout_CustomDelay(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Info("bye")})

	clock := &fakeClock{}
	doc := page.NewDocument("/dashboard", page.WithClock(clock))
	doc.AddContainer(flash.ContainerID)
	link := doc.AddLink(page.LogoutLinkID, "/logout")
	page.BindLogout(doc, client, 3*time.Second)
	require.NoError(t, doc.Ready(context.Background()))

	link.Activate(context.Background())
	doc.Flush()
	clock.Advance(2 * time.Second)
	assert.Empty(t, doc.Navigations())
	clock.Advance(time.Second)
	doc.Wait()
	assert.Equal(t, "/login", doc.Location())
}

func TestLogout_ErrorStatusDoesNotRedirect(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Error("Please log in to access this page.")})
	doc, clock, container := newLogoutPage(t, client)

	link, _ := doc.Link(page.LogoutLinkID)
	link.Activate(context.Background())
	doc.Wait()

	assert.True(t, onlyChild(t, container).HasClass("error"))
	assert.Zero(t, clock.Pending())
	assert.Empty(t, doc.Navigations())
}

func TestLogout_TransportFailureRendersError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unreachable", errors.New("dial tcp: connection refused"), "Could not reach the server"},
		{"malformed", fmt.Errorf("%w: GET /logout: invalid character '<'", domain.ErrMalformedResponse), "Unexpected response from the server"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{}
			client.queue(reply{err: tc.err})
			doc, clock, container := newLogoutPage(t, client)

			link, _ := doc.Link(page.LogoutLinkID)
			ev := link.Activate(context.Background())
			doc.Wait()

			assert.True(t, ev.DefaultPrevented())
			el := onlyChild(t, container)
			assert.Equal(t, tc.want, el.Text)
			assert.True(t, el.HasClass("error"))
			assert.Zero(t, clock.Pending())
			assert.Empty(t, doc.Navigations())
		})
	}
}

func TestLogout_EachClickSendsOneRequest(t *testing.T) {
	client := &stubClient{}
	client.queue(
		reply{n: domain.Success("one")},
		reply{n: domain.Success("two")},
		reply{n: domain.Success("three")},
	)
	doc, _, container := newLogoutPage(t, client)

	link, _ := doc.Link(page.LogoutLinkID)
	for i := 0; i < 3; i++ {
		link.Activate(context.Background())
	}
	doc.Wait()

	assert.Equal(t, 3, client.Logouts())
	assert.Len(t, container.Children(), 1)
}

func TestLogout_LastResponseToCompleteWins(t *testing.T) {
	first := make(chan struct{})
	second := make(chan struct{})
	client := &stubClient{}
	client.queue(
		reply{n: domain.Success("first click"), gate: first},
		reply{n: domain.Success("second click"), gate: second},
	)
	doc, _, container := newLogoutPage(t, client)
	link, _ := doc.Link(page.LogoutLinkID)

	link.Activate(context.Background())
	require.Eventually(t, func() bool { return client.Logouts() == 1 }, time.Second, time.Millisecond)
	link.Activate(context.Background())
	require.Eventually(t, func() bool { return client.Logouts() == 2 }, time.Second, time.Millisecond)

	close(second)
	require.Eventually(t, func() bool {
		children := container.Children()
		return len(children) == 1 && children[0].Text == "second click"
	}, time.Second, time.Millisecond)

	close(first)
	doc.Wait()
	assert.Equal(t, "first click", onlyChild(t, container).Text)
}

func TestRegistration_SendsAllFieldsAndRenders(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Notification{Status: "error", Message: "Name required"}})
	doc, form, container := newRegistrationPage(t, client)

	form.Set("name", "").Set("year", "Year 2").Set("sport", "Chess")
	ev := form.Submit(context.Background())
	doc.Wait()

	assert.True(t, ev.DefaultPrevented())
	subs := client.Submissions()
	require.Len(t, subs, 1)
	want := domain.FormSubmission{Fields: []domain.FormField{
		{Name: "name", Value: ""},
		{Name: "year", Value: "Year 2"},
		{Name: "sport", Value: "Chess"},
	}}
	if diff := cmp.Diff(want, subs[0]); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}

	el := onlyChild(t, container)
	assert.Equal(t, "Name required", el.Text)
	assert.True(t, el.HasClass("error"))
	assert.Empty(t, doc.Navigations())
	assert.Equal(t, "/home", doc.Location())
}

func TestRegistration_SuccessNeverRedirects(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Success("Registration successful")})
	doc, form, container := newRegistrationPage(t, client)

	form.Set("name", "Ada").Set("year", "Year 1").Set("sport", "Soccer")
	form.Submit(context.Background())
	doc.Wait()

	assert.Equal(t, "Registration successful", onlyChild(t, container).Text)
	assert.Empty(t, doc.Navigations())
}

func TestRegistration_SnapshotTakenAtSubmit(t *testing.T) {
	gate := make(chan struct{})
	client := &stubClient{}
	client.queue(reply{n: domain.Success("ok"), gate: gate})
	doc, form, _ := newRegistrationPage(t, client)

	form.Set("name", "Ada")
	form.Submit(context.Background())
	form.Set("name", "Grace")
	close(gate)
	doc.Wait()

	subs := client.Submissions()
	require.Len(t, subs, 1)
	name, _ := subs[0].Get("name")
	assert.Equal(t, "Ada", name)
}

func TestRegistration_TransportFailureRendersError(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{err: errors.New("connection reset")})
	doc, form, container := newRegistrationPage(t, client)

	form.Set("name", "Ada")
	form.Submit(context.Background())
	doc.Wait()

	el := onlyChild(t, container)
	assert.Equal(t, "Could not reach the server", el.Text)
	assert.Empty(t, doc.Navigations())
}

func TestBind_MissingElements(t *testing.T) {
	client := &stubClient{}

	doc := page.NewDocument("/dashboard")
	doc.AddLink(page.LogoutLinkID, "/logout")
	page.BindLogout(doc, client, 0)
	err := doc.Ready(context.Background())
	require.ErrorIs(t, err, page.ErrMissingElement)
	assert.Contains(t, err.Error(), flash.ContainerID)

	doc = page.NewDocument("/home")
	doc.AddContainer(flash.ContainerID)
	page.BindRegistration(doc, client)
	err = doc.Ready(context.Background())
	require.ErrorIs(t, err, page.ErrMissingElement)
	assert.Contains(t, err.Error(), page.RegisterFormID)
}

func TestLogoutHandler_NilContainerIsLoggedNotPanicked(t *testing.T) {
	client := &stubClient{}
	client.queue(reply{n: domain.Info("bye")})
	clock := &fakeClock{}
	doc := page.NewDocument("/dashboard", page.WithClock(clock))
	link := doc.AddLink(page.LogoutLinkID, "/logout")

	h := page.NewLogoutHandler(doc, client, flash.NewRenderer(nil))
	link.OnActivate(h.HandleActivate)
	link.Activate(context.Background())
	doc.Flush()
	clock.Advance(page.DefaultRedirectDelay)
	doc.Wait()

	assert.Equal(t, "/login", doc.Location())
}
