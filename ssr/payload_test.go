package ssr

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odvcencio/furry-hooks/demo"
)

func TestCodec_RoundTripRestoresState(t *testing.T) {
	server := demo.NewPage(demo.Config{IDPrefix: "s"})
	t.Cleanup(server.Close)
	server.BumpParent()
	server.IncrementBase()
	server.Dispatch(demo.Increment{})
	server.Dispatch(demo.SetName{Name: "Temuujin"})

	codec := NewCodec([]byte("secret"))
	payload, err := codec.Encode(server.Snapshot())
	require.NoError(t, err)

	snap, err := codec.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, server.Snapshot(), snap)

	client := demo.NewPage(demo.Config{Initial: &snap})
	t.Cleanup(client.Close)
	require.Equal(t, server.Identity().IDs(), client.Identity().IDs())
	require.Equal(t, demo.CounterState{Count: 1, Name: "Temuujin"}, client.Counter().State())
	require.Equal(t, 2, client.Base())
	require.Equal(t, 1, client.ParentRenders())
}

func TestCodec_RejectsTampering(t *testing.T) {
	codec := NewCodec([]byte("secret"))
	payload, err := codec.Encode(demo.Snapshot{Base: 1, IDPrefix: "s"})
	require.NoError(t, err)

	_, err = NewCodec([]byte("other")).Decode(payload)
	require.ErrorIs(t, err, ErrBadSignature)

	_, err = codec.Decode("no-separator")
	require.ErrorIs(t, err, ErrMalformedPayload)

	_, err = codec.Decode("!!!." + payload)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestExtract(t *testing.T) {
	page := demo.NewPage(demo.Config{IDPrefix: "s"})
	t.Cleanup(page.Close)
	codec := NewCodec(nil)
	payload, err := codec.Encode(page.Snapshot())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Document("hooks", page, payload).Render(context.Background(), &buf))

	got, err := Extract(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, payload, got)

	_, err = Extract([]byte("<html></html>"))
	require.ErrorIs(t, err, ErrNoPayload)
}
