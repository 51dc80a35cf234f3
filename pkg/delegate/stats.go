// ABOUTME: Registry counters snapshot with easyjson encoding
// ABOUTME: Lets embedders publish subscription activity on their own endpoints

package delegate

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
)

// Stats is a point-in-time view of a registry's counters.
type Stats struct {
	Active     int    `json:"active"`
	Subscribed uint64 `json:"subscribed"`
	Released   uint64 `json:"released"`
	Transfers  uint64 `json:"transfers"`
	Dispatches uint64 `json:"dispatches"`
	Calls      uint64 `json:"calls"`
}

var (
	_ easyjson.Marshaler = Stats{}
)

// MarshalEasyJSON writes s as a JSON object.
func (s Stats) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"active":`)
	w.Int(s.Active)
	w.RawString(`,"subscribed":`)
	w.Uint64(s.Subscribed)
	w.RawString(`,"released":`)
	w.Uint64(s.Released)
	w.RawString(`,"transfers":`)
	w.Uint64(s.Transfers)
	w.RawString(`,"dispatches":`)
	w.Uint64(s.Dispatches)
	w.RawString(`,"calls":`)
	w.Uint64(s.Calls)
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler.
func (s Stats) MarshalJSON() ([]byte, error) {
	return easyjson.Marshal(s)
}
