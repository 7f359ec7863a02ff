package game

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samdwyer/mansion/internal/i18n"
	"github.com/samdwyer/mansion/internal/mansion"
)

// VisitLog is the ordered record of rooms entered during one session.
// Entries reference rooms in the tree; they are never removed.
type VisitLog struct {
	rooms []*mansion.Room
}

// NewVisitLog creates an empty visit log.
func NewVisitLog() *VisitLog {
	return &VisitLog{rooms: make([]*mansion.Room, 0, 8)}
}

// Append records a room entry.
func (l *VisitLog) Append(r *mansion.Room) {
	l.rooms = append(l.rooms, r)
}

// Len returns the number of recorded entries.
func (l *VisitLog) Len() int {
	return len(l.rooms)
}

// Names returns the visited room names in order.
func (l *VisitLog) Names() []string {
	names := make([]string, len(l.rooms))
	for i, r := range l.rooms {
		names[i] = r.Name
	}
	return names
}

// Report writes the 1-indexed list of visited rooms.
func (l *VisitLog) Report(w io.Writer, p *i18n.Printer) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", p.Sprintf(i18n.VisitedHeader)); err != nil {
		return err
	}
	for i, r := range l.rooms {
		if _, err := fmt.Fprintln(w, p.Sprintf(i18n.VisitedEntry, strconv.Itoa(i+1), r.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops the log's references and its backing storage.
func (l *VisitLog) Reset() {
	l.rooms = nil
}
