/*
Package server implements msgpack IPC for the emoji suggestion services.

The server package provides a minimal interface for live emoji suggestion using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports composing-text updates, shortcode prefix completion, and health checks.
Composing-text updates are processed asynchronously through the suggestion pipeline; completion requests are answered synchronously with timing info included in responses.

# IPC

The server operates on two channels of traffic: clients send structured messages via stdin, and the server writes responses plus unsolicited suggestion events through stdout.

Composing-text updates feed the debounced pipeline:

	{"id": "req_001", "op": "compose", "x": "hello :smi"}

Each update is acknowledged immediately; once the debounce window settles, the matched candidate list is pushed as an event:

	{"ev": "suggestions", "s": [{"v": "😊", "n": "smiling face with smiling eyes"}], "c": 1}

Shortcode completion is a synchronous request over the catalog's prefix index:

	{"id": "req_002", "op": "complete", "p": "gri", "l": 8}
	{"id": "req_002", "s": [{"v": "😀", "n": "grinning face"}], "c": 2, "t": 0}

Response structures include status information and error details when an op fails.

# Message Types

Request carries every inbound operation; the op field selects

	compose  - a new composing-text snapshot for the pipeline
	complete - prefix completion over catalog names
	health   - liveness check

SuggestionItem pairs a concrete emoji sequence with its display name.
SuggestionsEvent is pushed whenever the pipeline publishes a new candidate list.
CompleteResponse answers completion requests with timing data.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// Request - every inbound IPC operation
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Text   string `msgpack:"x,omitempty"` // composing text for "compose"
	Prefix string `msgpack:"p,omitempty"` // name prefix for "complete"
	Limit  int    `msgpack:"l,omitempty"`
}

// SuggestionItem - one candidate in a response or event
type SuggestionItem struct {
	Value string `msgpack:"v"`
	Name  string `msgpack:"n"`
}

// SuggestionsEvent - unsolicited pipeline publication
type SuggestionsEvent struct {
	Event string           `msgpack:"ev"`
	Items []SuggestionItem `msgpack:"s"`
	Count int              `msgpack:"c"`
}

// CompleteResponse - shortcode completion response
type CompleteResponse struct {
	ID        string           `msgpack:"id"`
	Items     []SuggestionItem `msgpack:"s"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// StatusResponse - acknowledgement for compose/health ops
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for failed requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
