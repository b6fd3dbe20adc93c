package observer

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/rootscript/core/pkg/token"
)

// Encode renders an Event as the JSON wire format (spec §6): strings use
// standard JSON escaping and every numeric token position/range is a
// non-negative integer. Built incrementally with sjson rather than a
// struct-tagged json.Marshal, matching how the rest of the retrieved
// stack reaches for tidwall/gjson+sjson for ad hoc JSON construction.
func Encode(e Event) (string, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("source", string(e.Source))
	set("action", string(e.Action))
	if e.ModuleID != "" {
		set("moduleID", e.ModuleID)
	}
	if e.Action == ActionTokenized {
		set("tokens", encodeTokens(e.Tokens))
	}
	if e.Action == ActionRemoveAfterPosition || e.Action == ActionAdd || e.Action == ActionReport {
		set("position", e.Position)
	}
	if e.Action == ActionAdd || e.Action == ActionReport {
		set("level", e.Level)
		set("location.line", e.Location.Line)
		set("location.column", e.Location.Column)
		set("string", e.String)
	}
	if e.Action == ActionPrint {
		set("string", e.String)
	}
	return doc, err
}

func encodeTokens(tokens []token.Token) []map[string]any {
	out := make([]map[string]any, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, map[string]any{
			"type":     string(t.Type),
			"value":    t.Value,
			"position": t.Position,
			"location": map[string]any{"line": t.Location.Line, "column": t.Location.Column},
			"trivia":   t.Trivia,
			"generated": t.Generated,
		})
	}
	return out
}

// Decode parses a wire-format JSON document back into an Event using
// gjson, returning the zero Event on malformed input rather than erroring
// — a collaborator dropping/garbling an event must not destabilize the
// core (spec §5: "the core ... must remain correct if the observer drops
// events").
func Decode(doc string) Event {
	r := gjson.Parse(doc)
	e := Event{
		Source:   Source(r.Get("source").String()),
		Action:   Action(r.Get("action").String()),
		ModuleID: r.Get("moduleID").String(),
		Position: int(r.Get("position").Int()),
		Level:    int(r.Get("level").Int()),
		Location: token.Position{
			Line:   int(r.Get("location.line").Int()),
			Column: int(r.Get("location.column").Int()),
		},
		String: r.Get("string").String(),
	}
	if tk := r.Get("tokens"); tk.IsArray() {
		for _, tv := range tk.Array() {
			e.Tokens = append(e.Tokens, token.Token{
				Type:     token.Type(tv.Get("type").String()),
				Value:    tv.Get("value").String(),
				Position: int(tv.Get("position").Int()),
				Location: token.Position{
					Line:   int(tv.Get("location.line").Int()),
					Column: int(tv.Get("location.column").Int()),
				},
				Trivia:    tv.Get("trivia").Bool(),
				Generated: tv.Get("generated").Bool(),
			})
		}
	}
	return e
}
