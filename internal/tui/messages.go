package tui

import (
	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

// searchResultMsg carries the sequence number of the request that produced
// it; responses from superseded requests are dropped.
type searchResultMsg struct {
	seq       int
	briefings []briefing.Briefing
}

type searchErrMsg struct {
	seq int
	err error
}

type exportDoneMsg struct {
	path  string
	count int
}

type exportErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
