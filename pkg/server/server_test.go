package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkarren/docdex/pkg/index"
)

func serverStore() *index.Store {
	root := index.NewNode()
	splice := root.Ensure([]string{"array", "splice"})
	splice.SetVariant(index.Basic, 120)
	splice.SetVariant(index.Detail, 310)
	root.Ensure([]string{"array", "push"}).SetVariant(index.Basic, 60)
	root.Ensure([]string{"array", "pop"}).SetVariant(index.Basic, 55)
	return index.NewStore(root)
}

// runServer feeds the requests through a server and returns a decoder
// positioned after the readiness message.
func runServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServer(serverStore(), &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	require.Equal(t, 3, ready.Docs)
	return dec
}

func TestServerResolve(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Op: "resolve", Input: "array.splice"},
		Request{ID: "r2", Op: "resolve", Input: "array.splice", Detail: true},
		Request{ID: "r3", Op: "resolve", Input: "array.bogus"},
	)

	var basic ResolveResponse
	require.NoError(t, dec.Decode(&basic))
	assert.Equal(t, "r1", basic.ID)
	assert.Equal(t, "array/splice.md", basic.Path)
	assert.True(t, basic.Exists)

	var detail ResolveResponse
	require.NoError(t, dec.Decode(&detail))
	assert.Equal(t, "array/splice.detail.md", detail.Path)

	var miss ResolveResponse
	require.NoError(t, dec.Decode(&miss))
	assert.Equal(t, "array.bogus", miss.Path, "dead ends echo the input")
	assert.False(t, miss.Exists)
}

func TestServerComplete(t *testing.T) {
	dec := runServer(t,
		Request{ID: "c1", Op: "complete", Input: "array.sp", Iteration: 1},
		Request{ID: "c2", Op: "complete", Input: "array.p", Iteration: 2},
		Request{ID: "c3", Op: "complete", Input: "arr"}, // missing n defaults to 1
	)

	var extend CompleteResponse
	require.NoError(t, dec.Decode(&extend))
	assert.Equal(t, "c1", extend.ID)
	assert.Equal(t, "array splice ", extend.Line)
	assert.Nil(t, extend.Choices)

	var choices CompleteResponse
	require.NoError(t, dec.Decode(&choices))
	assert.Empty(t, choices.Line)
	assert.Equal(t, []string{"pop", "push"}, choices.Choices)

	var first CompleteResponse
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "array ", first.Line)
}

func TestServerHealth(t *testing.T) {
	dec := runServer(t, Request{ID: "h1", Op: "health"})

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "h1", status.ID)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, 3, status.Docs)
}

func TestServerBadRequests(t *testing.T) {
	dec := runServer(t,
		Request{ID: "b1", Op: "teleport"},
		Request{ID: "b2", Op: "resolve"},
	)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, "b1", unknown.ID)
	assert.Equal(t, 400, unknown.Code)

	var missing ErrorResponse
	require.NoError(t, dec.Decode(&missing))
	assert.Equal(t, "b2", missing.ID)
	assert.Contains(t, missing.Error, "'q'")
}
