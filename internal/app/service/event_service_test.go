package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard-backend/internal/app/service"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := service.GenerateJoinCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")

	ev, err := env.event.CreateEvent(ctx, org.ID, "  Sprint  ")
	require.NoError(t, err)
	assert.Equal(t, "Sprint", ev.Name)
	assert.Regexp(t, codePattern, ev.Code)
	assert.Equal(t, org.Ref(), ev.Organizer)
	assert.Equal(t, []domain.UserRef{org.Ref()}, ev.Members)
	assert.Empty(t, ev.Tasks)
	assert.False(t, ev.IsFinished)
	assert.Empty(t, env.pub.all())

	_, err = env.event.CreateEvent(ctx, org.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEventNameEmpty)
}

func TestEventService_CreateRetriesTakenCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")

	codes := []string{"AAAAAA", "AAAAAA", "AAAAAA", "BBBBBB"}
	env.event.WithCodeGenerator(func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	})

	first, err := env.event.CreateEvent(ctx, org.ID, "One")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAA", first.Code)

	second, err := env.event.CreateEvent(ctx, org.ID, "Two")
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", second.Code)
	assert.Empty(t, codes)
}

func TestEventService_CreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")

	env.event.WithCodeGenerator(func() (string, error) { return "SAME11", nil })
	_, err := env.event.CreateEvent(ctx, org.ID, "One")
	require.NoError(t, err)

	_, err = env.event.CreateEvent(ctx, org.ID, "Two")
	assert.ErrorIs(t, err, domain.ErrCodeExhausted)

	env.event.WithCodeGenerator(func() (string, error) { return "", errors.New("entropy") })
	_, err = env.event.CreateEvent(ctx, org.ID, "Three")
	assert.Error(t, err)
}

func TestEventService_JoinIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")

	ev, err := env.event.CreateEvent(ctx, org.ID, "Sprint")
	require.NoError(t, err)

	joined, added, err := env.event.JoinEvent(ctx, "  "+ev.Code+" ", mem.ID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []domain.UserRef{org.Ref(), mem.Ref()}, joined.Members)

	call := env.pub.last(t)
	assert.Equal(t, ev.ID, call.EventID)
	assert.Equal(t, ports.TopicMembersUpdated, call.Topic)
	assert.Equal(t, joined.Members, call.Payload)

	again, added, err := env.event.JoinEvent(ctx, ev.Code, mem.ID)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, joined.Members, again.Members)
	assert.Len(t, env.pub.all(), 1)

	_, added, err = env.event.JoinEvent(ctx, ev.Code, org.ID)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestEventService_JoinLowercaseCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")

	env.event.WithCodeGenerator(func() (string, error) { return "ABC123", nil })
	_, err := env.event.CreateEvent(ctx, org.ID, "Sprint")
	require.NoError(t, err)

	ev, added, err := env.event.JoinEvent(ctx, "abc123", mem.ID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, ev.HasMember(mem.ID))
}

func TestEventService_JoinInvalidCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	mem := env.seedUser(t, "mem1")

	_, _, err := env.event.JoinEvent(ctx, "NOPE00", mem.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, _, err = env.event.JoinEvent(ctx, "  ", mem.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestEventService_JoinFinishedEvent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")
	late := env.seedUser(t, "late")
	ev := env.sprint(t, org, mem)

	require.NoError(t, env.event.FinishEvent(ctx, ev.ID, org.ID))

	_, _, err := env.event.JoinEvent(ctx, ev.Code, late.ID)
	assert.ErrorIs(t, err, domain.ErrEventFinished)

	_, added, err := env.event.JoinEvent(ctx, ev.Code, mem.ID)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestEventService_ListForUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")

	own, err := env.event.CreateEvent(ctx, org.ID, "Own")
	require.NoError(t, err)
	theirs, err := env.event.CreateEvent(ctx, mem.ID, "Theirs")
	require.NoError(t, err)
	_, _, err = env.event.JoinEvent(ctx, theirs.Code, org.ID)
	require.NoError(t, err)

	organized, joined, err := env.event.ListForUser(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, organized, 1)
	require.Len(t, joined, 1)
	assert.Equal(t, own.ID, organized[0].ID)
	assert.Equal(t, theirs.ID, joined[0].ID)

	organized, joined, err = env.event.ListForUser(ctx, env.seedUser(t, "loner").ID)
	require.NoError(t, err)
	assert.Empty(t, organized)
	assert.Empty(t, joined)
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")
	ev := env.sprint(t, org, mem)

	_, err := env.chat.PostMessage(ctx, ev.ID, mem.ID, "hello")
	require.NoError(t, err)
	env.pub.reset()

	assert.ErrorIs(t, env.event.DeleteEvent(ctx, ev.ID, mem.ID), domain.ErrDeleteForbidden)

	require.NoError(t, env.event.DeleteEvent(ctx, ev.ID, org.ID))
	assert.Empty(t, env.pub.all())

	_, err = env.event.GetEvent(ctx, ev.ID, org.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	for _, user := range []domain.User{org, mem} {
		organized, joined, err := env.event.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, organized)
		assert.Empty(t, joined)
	}

	msgs, err := env.messages.ListMessages(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	assert.ErrorIs(t, env.event.DeleteEvent(ctx, ev.ID, org.ID), domain.ErrEventNotFound)
}

func TestEventService_Finish(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")
	ev := env.sprint(t, org, mem)

	assert.ErrorIs(t, env.event.FinishEvent(ctx, ev.ID, mem.ID), domain.ErrFinishForbidden)
	assert.Empty(t, env.pub.all())

	require.NoError(t, env.event.FinishEvent(ctx, ev.ID, org.ID))
	call := env.pub.last(t)
	assert.Equal(t, ports.TopicEventFinished, call.Topic)
	assert.Nil(t, call.Payload)

	require.NoError(t, env.event.FinishEvent(ctx, ev.ID, org.ID))

	got, err := env.event.GetEvent(ctx, ev.ID, mem.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFinished)

	assert.ErrorIs(t, env.event.FinishEvent(ctx, "missing", org.ID), domain.ErrEventNotFound)
}

func TestEventService_IsMember(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	org := env.seedUser(t, "org1")
	mem := env.seedUser(t, "mem1")
	out := env.seedUser(t, "out1")
	ev := env.sprint(t, org, mem)

	for userID, want := range map[string]bool{org.ID: true, mem.ID: true, out.ID: false} {
		got, err := env.event.IsMember(ctx, ev.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := env.event.IsMember(ctx, "missing", org.ID)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestServices_RequirePublisher(t *testing.T) {
	env := newTestEnv(t)
	assert.Panics(t, func() { service.NewEventService(env.events, env.users, nil) })
	assert.Panics(t, func() { service.NewTaskService(env.events, nil) })
	assert.Panics(t, func() { service.NewChatService(env.events, env.users, env.messages, nil) })
}
