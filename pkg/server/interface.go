/*
Package server implements msgpack IPC for editor integrations.

Requests arrive on stdin and responses leave on stdout, one msgpack
value each, so an editor can resolve phrases and drive tab completion
without shelling out per keystroke. Each request carries an ID echoed
back in its response and an op selecting the operation.

Resolve a phrase to a document path:

	{"id": "r1", "op": "resolve", "q": "array.splice", "detail": true}

Drive completion with the press counter the frontend maintains:

	{"id": "c1", "op": "complete", "q": "arr", "n": 1}

Responses are data-shaped even for dead ends; the error response is
reserved for malformed requests.
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"` // "resolve", "complete", "health"
	Input     string `msgpack:"q,omitempty"`
	Detail    bool   `msgpack:"detail,omitempty"`
	Install   bool   `msgpack:"install,omitempty"`
	Iteration int    `msgpack:"n,omitempty"`
}

// ResolveResponse answers a resolve op.
type ResolveResponse struct {
	ID          string   `msgpack:"id"`
	Path        string   `msgpack:"path"`
	Exists      bool     `msgpack:"exists"`
	IsIndex     bool     `msgpack:"is_index,omitempty"`
	Suggestions []string `msgpack:"suggestions,omitempty"`
	TimeTaken   int64    `msgpack:"t"` // microseconds
}

// CompleteResponse answers a complete op. Choices is set when the
// frontend should display a list instead of replacing the line.
type CompleteResponse struct {
	ID        string   `msgpack:"id"`
	Line      string   `msgpack:"line,omitempty"`
	Choices   []string `msgpack:"choices,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Docs   int    `msgpack:"docs,omitempty"`
}

// ErrorResponse reports a malformed request.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
