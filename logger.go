package bptree

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// debugLogger is the single process-wide sink spec.md §6 calls for: "Debug
// logger: single process-wide sink that emits timestamped lines when the
// tree was created with debug = true; purely observational." zerolog
// stamps every event with a timestamp by default, which is exactly this
// contract; grounded on the zerolog dependency pulled in by the
// sausheong-mindb reference manifest in the retrieval pack.
var (
	debugMu     sync.Mutex
	debugLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// SetDebugOutput redirects the process-wide debug sink. It is safe to call
// at any time; it affects every Tree created with debug=true, past or
// future, since the sink is process-wide rather than per-tree.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugLogger = zerolog.New(w).With().Timestamp().Logger()
}

func logDebug(op string, fields map[string]any) {
	debugMu.Lock()
	logger := debugLogger
	debugMu.Unlock()

	evt := logger.Debug().Str("op", op)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg("bptree")
}
