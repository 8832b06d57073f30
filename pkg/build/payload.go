package build

import (
	"encoding/json"
	"fmt"
	"io"
)

// buildPayload is the build as posted by the orchestrator. Properties are either raw values
// or [value, source] pairs.
type buildPayload struct {
	Complete     bool                       `json:"complete"`
	Results      *int                       `json:"results"`
	Properties   map[string]json.RawMessage `json:"properties"`
	SourceStamps []SourceStamp              `json:"sourcestamps"`
	Buildset     *struct {
		SourceStamps []SourceStamp `json:"sourcestamps"`
	} `json:"buildset"`
	URL string `json:"url"`
}

// ParseEvent decodes a build posted by the orchestrator.
func ParseEvent(r io.Reader) (Event, error) {
	var payload buildPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return Event{}, fmt.Errorf("failed to decode build: %v", err)
	}
	event := Event{
		Complete:     payload.Complete,
		Properties:   Properties{},
		SourceStamps: payload.SourceStamps,
		URL:          payload.URL,
	}
	if payload.Results != nil {
		event.Result = Result(*payload.Results)
	}
	if len(event.SourceStamps) == 0 && payload.Buildset != nil {
		event.SourceStamps = payload.Buildset.SourceStamps
	}
	for k, raw := range payload.Properties {
		var val interface{}
		if err := json.Unmarshal(raw, &val); err != nil {
			return Event{}, fmt.Errorf("failed to decode property %s: %v", k, err)
		}
		if pair, ok := val.([]interface{}); ok && len(pair) == 2 {
			if _, isSource := pair[1].(string); isSource {
				val = pair[0]
			}
		}
		event.Properties[k] = val
	}
	return event, nil
}
