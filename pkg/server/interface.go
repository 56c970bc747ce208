/*
Package server implements msgpack IPC for the arrangement engine.

The server reads a stream of msgpack-encoded requests from stdin and writes one
msgpack-encoded response per request to stdout. Requests are handled one at a
time, in order.

# IPC

Every request carries an ID that is echoed in its response, and an action:

	{"id": "r1", "action": "enumerate", "m": 2, "w": ["dug"]}

	{"id": "r1", "s": [{"w": "DGU", "n": 1}, ...], "c": 6, "k": 3, "o": 6, "t": 41}

An estimate returns the raw ordering count (as a decimal string, it is often
larger than 64 bits) without enumerating:

	{"id": "r2", "action": "estimate", "m": 1, "w": ["stone", "notes"]}

	{"id": "r2", "o": "36100", "n": 10, "k": 5}

Health checks:

	{"id": "r3", "action": "health"}

	{"id": "r3", "status": "ok"}

Failures come back as {"id": ..., "e": "message", "c": code}. Requests whose
multiset exceeds the configured letter limit are refused with code 413 since
the work grows factorially with the number of letters.
*/
package server

// Actions understood by the server.
const (
	ActionEnumerate = "enumerate"
	ActionEstimate  = "estimate"
	ActionHealth    = "health"
)

// Request is the single envelope for every action.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action"`
	Mode   int      `msgpack:"m,omitempty"` // 1 combination, 2 permutation
	Words  []string `msgpack:"w,omitempty"`
	Prefix string   `msgpack:"p,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
}

// Arrangement is one listed result with its 1-based serial number.
type Arrangement struct {
	Word   string `msgpack:"w"`
	Serial int    `msgpack:"n"`
}

// EnumerateResponse carries arrangements.
type EnumerateResponse struct {
	ID           string        `msgpack:"id"`
	Arrangements []Arrangement `msgpack:"s"`
	Count        int           `msgpack:"c"` // total before the limit is applied
	Length       int           `msgpack:"k"`
	Orderings    int           `msgpack:"o"`
	TimeTaken    int64         `msgpack:"t"` // microseconds
}

// EstimateResponse carries the raw ordering count of a request.
type EstimateResponse struct {
	ID        string `msgpack:"id"`
	Orderings string `msgpack:"o"`
	Letters   int    `msgpack:"n"`
	Length    int    `msgpack:"k"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
