package expr

import (
	"time"
)

func init() {
	register("time", newTimeExprs())
}

// newTimeExprs exposes time helpers to filters, e.g. `time.Now().Hour() >= 8`.
func newTimeExprs() map[string]interface{} {
	return map[string]interface{}{
		"Parse":         parse,
		"Now":           now,
		"Since":         since,
		"ParseDuration": parseDuration,
	}
}

// parse panics on malformed input; the filter run turns the panic into an evaluation error.
func parse(timestamp string) time.Time {
	res, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		panic(err)
	}
	return res
}

func parseDuration(duration string) time.Duration {
	res, err := time.ParseDuration(duration)
	if err != nil {
		panic(err)
	}
	return res
}

func since(timestamp string) time.Duration {
	return time.Since(parse(timestamp))
}

func now() time.Time {
	return time.Now()
}
