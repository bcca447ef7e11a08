/*
Package server implements msgpack IPC for "did you mean?" suggestion services.

The server package provides a minimal interface for identifier suggestion using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports suggestion requests against either an inline candidate list or a named registry set, plus registry management ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Suggestion requests with inline candidates use mainly this structure:

	{"id": "req_001", "in": "vacter", "c": ["vector", "id", "name"]}

or against a named set loaded earlier:

	{"id": "req_002", "in": "vacter", "set": "fields"}

The server responds with the closest candidate under the threshold, or found=false:

	{"id": "req_001", "s": "vector", "d": 2, "f": true, "t": 38}

An input that is already an exact member of the queried set comes back with k=true and no suggestion, since there is no typo to correct.

Registry management enables runtime loading of candidate sets:

	{"id": "reg_001", "action": "add_set", "set": "fields", "names": ["vector", "id"]}
	{"id": "reg_002", "action": "get_info"}
	{"id": "reg_003", "action": "list_sets"}

Response structures include status information and error details when an op fails.

Absence of a close-enough candidate is a normal response (f=false), never an error.
Error responses are reserved for malformed requests and config-bound violations (input too long, candidate list too large).

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// Request is the envelope for all incoming messages. Action selects
// registry ops; otherwise the message is a suggestion request.
type Request struct {
	ID         string   `msgpack:"id"`
	Input      string   `msgpack:"in,omitempty"`
	Candidates []string `msgpack:"c,omitempty"`
	Set        string   `msgpack:"set,omitempty"`
	Action     string   `msgpack:"action,omitempty"` // "add_set", "get_info", "list_sets"
	Names      []string `msgpack:"names,omitempty"`  // for "add_set"
}

// SuggestResponse - suggestion result
type SuggestResponse struct {
	ID         string `msgpack:"id"`
	Suggestion string `msgpack:"s,omitempty"`
	Distance   int    `msgpack:"d,omitempty"`
	Found      bool   `msgpack:"f"`
	Known      bool   `msgpack:"k,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// RegistryResponse - registry operation response
type RegistryResponse struct {
	ID     string   `msgpack:"id"`
	Status string   `msgpack:"status"`
	Sets   []string `msgpack:"sets,omitempty"`
	Count  int      `msgpack:"count,omitempty"`
	Error  string   `msgpack:"error,omitempty"`
}

// ErrorResponse holds basic error information for malformed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
