package search

import (
	"github.com/poiesic/charfind/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string, mode core.MatchMode)
	AfterParse(q *Query)
	AfterLoad(recordCount int)
	Hit(record *core.Record)
	Finish(rows []Row, header string)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ core.MatchMode) {}
func (n *noopMonitor) AfterParse(_ *Query)              {}
func (n *noopMonitor) AfterLoad(_ int)                  {}
func (n *noopMonitor) Hit(_ *core.Record)               {}
func (n *noopMonitor) Finish(_ []Row, _ string)         {}
