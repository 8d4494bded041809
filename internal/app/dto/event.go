package dto

type EventSummary struct {
	Name      string `json:"name"`
	Listeners int    `json:"listeners"`
}

type Listener struct {
	Position int    `json:"position"`
	Priority int    `json:"priority"`
	Seq      uint64 `json:"seq"`
}

type EventListeners struct {
	Event     string     `json:"event"`
	Listeners []Listener `json:"listeners"`
}
