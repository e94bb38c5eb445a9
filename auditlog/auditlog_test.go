package auditlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hllrcon/rcon-go/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	resp wire.Response
	err  error
}

func (f *fakeExecutor) Execute(context.Context, string, int, string) (wire.Response, error) {
	return f.resp, f.err
}

func TestDecorator_RecordsSuccessfulCall(t *testing.T) {
	sink := NewMemorySink()
	d := Wrap(&fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}, sink)

	_, err := d.Execute(context.Background(), "GetPlayers", 2, "")
	require.NoError(t, err)

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "GetPlayers", entries[0].Name)
	assert.Equal(t, 2, entries[0].Version)
	assert.NoError(t, entries[0].Err)
}

func TestDecorator_RecordsFailedCall(t *testing.T) {
	sink := NewMemorySink()
	wantErr := errors.New("boom")
	d := Wrap(&fakeExecutor{err: wantErr}, sink)

	_, err := d.Execute(context.Background(), "KickPlayer", 2, "76500 rule")
	require.ErrorIs(t, err, wantErr)

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Err, wantErr)
}

func TestDecorator_NilSinkDefaultsToNoop(t *testing.T) {
	d := Wrap(&fakeExecutor{resp: wire.Response{StatusCode: wire.StatusOK}}, nil)
	_, err := d.Execute(context.Background(), "GetPlayers", 2, "")
	require.NoError(t, err)
}

func TestMemorySink_EntriesReturnsCopy(t *testing.T) {
	sink := NewMemorySink()
	require.NoError(t, sink.Record(context.Background(), Entry{Name: "A"}))

	entries := sink.Entries()
	entries[0].Name = "mutated"

	assert.Equal(t, "A", sink.Entries()[0].Name)
}

func TestNoopSink_DiscardsEntries(t *testing.T) {
	var s NoopSink
	require.NoError(t, s.Record(context.Background(), Entry{Name: "A", Timestamp: time.Now()}))
}
