package api

// StatSet is the OpenNEM v4 statset envelope, used both when decoding
// upstream energy feeds and when serializing computed share output.
type StatSet struct {
	Type      string       `json:"type"`
	Version   string       `json:"version"`
	Network   string       `json:"network"`
	CreatedAt string       `json:"created_at"`
	Data      []StatSeries `json:"data"`
}

// StatSeries is one series inside a statset. History data is positionally
// aligned to periods from History.Start to History.Last inclusive; null
// entries mark periods with no defined value.
type StatSeries struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Units       string  `json:"units,omitempty"`
	Network     string  `json:"network,omitempty"`
	Source      string  `json:"source,omitempty"`
	Description string  `json:"description,omitempty"`
	Note        string  `json:"note,omitempty"`
	History     History `json:"history"`
}

type History struct {
	Start    string     `json:"start"`
	Last     string     `json:"last"`
	Interval string     `json:"interval"`
	Data     []*float64 `json:"data"`
}

// Len reports the number of positional slots in the history array.
func (h History) Len() int { return len(h.Data) }
