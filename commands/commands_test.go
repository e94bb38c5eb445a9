package commands

import (
	"context"
	"testing"

	"github.com/hllrcon/rcon-go/rconerrors"
	"github.com/hllrcon/rcon-go/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls []call
	resp  wire.Response
	err   error
}

type call struct {
	name    string
	version int
	body    string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	f.calls = append(f.calls, call{name, version, body})
	return f.resp, f.err
}

func (f *fakeExecutor) lastCall() call {
	return f.calls[len(f.calls)-1]
}

func TestAddAdmin_V2BuildsJSONBody(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.AddAdmin(context.Background(), "76500", "owner", "promoted", 2)
	require.NoError(t, err)

	got := exec.lastCall()
	assert.Equal(t, "AddAdmin", got.name)
	assert.Equal(t, 2, got.version)
	assert.JSONEq(t, `{"PlayerId":"76500","AdminGroup":"owner","Comment":"promoted"}`, got.body)
}

func TestAddAdmin_V1BuildsSpaceSeparatedBody(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(exec)

	err := c.AddAdmin(context.Background(), "76500", "owner", "promoted", 1)
	require.NoError(t, err)

	got := exec.lastCall()
	assert.Equal(t, "adminadd", got.name)
	assert.Equal(t, "76500 owner promoted", got.body)
}

func TestAddAdmin_PropagatesCommandError(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: 403, StatusMessage: "Forbidden"}}
	c := New(exec)

	err := c.AddAdmin(context.Background(), "76500", "owner", "", 2)
	require.Error(t, err)

	var cmdErr *rconerrors.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 403, cmdErr.StatusCode)
}

func TestKillPlayer_ReturnsFalseOnKnownStatus(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: 500, StatusMessage: "player not found"}}
	c := New(exec)

	ok, err := c.KillPlayer(context.Background(), "76500", "rule violation", 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKillPlayer_PropagatesUnknownStatus(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: 503, StatusMessage: "server busy"}}
	c := New(exec)

	ok, err := c.KillPlayer(context.Background(), "76500", "rule violation", 2)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestKillPlayer_TrueOnSuccess(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	ok, err := c.KillPlayer(context.Background(), "76500", "rule violation", 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBanPlayer_PermanentWhenNoDuration(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.BanPlayer(context.Background(), "76500", "cheating", "admin1", 0, 2)
	require.NoError(t, err)

	got := exec.lastCall()
	assert.Equal(t, "PermanentBanPlayer", got.name)
	assert.JSONEq(t, `{"PlayerId":"76500","Reason":"cheating","AdminName":"admin1"}`, got.body)
}

func TestBanPlayer_TemporaryWithDuration(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.BanPlayer(context.Background(), "76500", "cheating", "admin1", 24, 2)
	require.NoError(t, err)

	got := exec.lastCall()
	assert.Equal(t, "TemporaryBanPlayer", got.name)
	assert.JSONEq(t, `{"PlayerId":"76500","Reason":"cheating","AdminName":"admin1","Duration":24}`, got.body)
}

func TestGetPlayer_V2DecodesContentDict(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK, ContentBody: `{"name":"Soldier"}`}}
	c := New(exec)

	res, err := c.GetPlayer(context.Background(), "76500", 2)
	require.NoError(t, err)
	assert.Equal(t, "Soldier", res["name"])

	got := exec.lastCall()
	assert.Equal(t, "GetServerInformation", got.name)
	assert.JSONEq(t, `{"Name":"player","Value":"76500"}`, got.body)
}

func TestSetWelcomeMessage_UnsupportedOnV1(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(exec)

	err := c.SetWelcomeMessage(context.Background(), "hello", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, rconerrors.ErrUnsupportedVersion)
	assert.Empty(t, exec.calls)
}

func TestSetAutoBalance_V1UsesOnOff(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(exec)

	require.NoError(t, c.SetAutoBalance(context.Background(), true, 1))
	assert.Equal(t, "on", exec.lastCall().body)

	require.NoError(t, c.SetAutoBalance(context.Background(), false, 1))
	assert.Equal(t, "off", exec.lastCall().body)
}

func TestAddBannedWords_V2JoinsWithComma(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.AddBannedWords(context.Background(), []string{"foo", "bar"}, 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"BannedWords":"foo,bar"}`, exec.lastCall().body)
}

func TestRemoveTemporaryBan_FalseOn400(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: 400}}
	c := New(exec)

	ok, err := c.RemoveTemporaryBan(context.Background(), "76500", 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAdminLog_RejectsNegativeSpan(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(exec)

	_, err := c.GetAdminLog(context.Background(), -1, "", 2)
	require.Error(t, err)
	assert.Empty(t, exec.calls)
}

func TestGetAdminLog_V1ConvertsSecondsToMinutes(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK, ContentBody: "log"}}
	c := New(exec)

	out, err := c.GetAdminLog(context.Background(), 120, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "log", out)
	assert.Equal(t, "2", exec.lastCall().body)
}

func TestGetAvailableSectorNames_ParsesDialogueParameters(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{
		StatusCode: wire.StatusOK,
		ContentBody: `{"dialogueParameters":[
			{"valueMember":"A,B"},
			{"valueMember":"C,D"},
			{"valueMember":"E"},
			{"valueMember":"F"},
			{"valueMember":"G"}
		]}`,
	}}
	c := New(exec)

	sectors, err := c.GetAvailableSectorNames(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, sectors, 5)
	assert.Equal(t, []string{"A", "B"}, sectors[0])
	assert.Equal(t, []string{"E"}, sectors[2])
}

func TestSetVoteKickThreshold_JoinsPairs(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.SetVoteKickThreshold(context.Background(), []VoteKickThreshold{{10, 1}, {20, 2}}, 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ThresholdValue":"10,1,20,2"}`, exec.lastCall().body)
}

func TestSetMatchTimer_V1Unsupported(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(exec)

	err := c.SetMatchTimer(context.Background(), GameModeWarfare, 60, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, rconerrors.ErrUnsupportedVersion)
}

func TestMoveMapInSequence_V2BuildsBody(t *testing.T) {
	exec := &fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}
	c := New(exec)

	err := c.MoveMapInSequence(context.Background(), 0, 3, 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CurrentIndex":0,"NewIndex":3}`, exec.lastCall().body)
}
