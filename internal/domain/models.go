package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Table holds one extracted table: a header row plus data rows.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Format renders the table as column-aligned plain text. Cells are
// left-aligned and padded to the widest value in their column.
func (t Table) Format() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		line := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				line[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
			} else {
				line[i] = cell
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(line, "  "), " "))
	}

	writeRow(t.Headers)
	for _, row := range t.Rows {
		b.WriteByte('\n')
		writeRow(row)
	}
	return b.String()
}

// ExtractedContent is the (text, tables) pair produced by parsing a document.
// It is immutable once produced; re-extraction replaces it wholesale.
type ExtractedContent struct {
	Text   string  `json:"text"`
	Tables []Table `json:"tables"`
}

// Render serializes the content into a single textual payload for the
// comparison prompt: the plain text followed by each rendered table.
func (c *ExtractedContent) Render() string {
	parts := make([]string, 0, 1+len(c.Tables))
	parts = append(parts, c.Text)
	for _, t := range c.Tables {
		parts = append(parts, t.Format())
	}
	return strings.Join(parts, "\n\n")
}

// TempFile records a materialized copy of an uploaded file on scratch storage.
type TempFile struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	Extension    string `json:"extension"`
}

// RoleSlot holds the workflow state for one document role. Both fields
// start absent and transition independently.
type RoleSlot struct {
	File    *TempFile         `json:"file,omitempty"`
	Content *ExtractedContent `json:"content,omitempty"`
}

// Phase derives the per-role workflow phase from field presence.
func (s *RoleSlot) Phase() RolePhase {
	switch {
	case s.File == nil:
		return PhaseEmpty
	case s.Content == nil:
		return PhaseFileStored
	default:
		return PhaseContentReady
	}
}

// Session is the per-session workflow state: one RoleSlot per document
// role plus the last generated comparison. Private to one session;
// actions within a session execute sequentially.
type Session struct {
	ID         uuid.UUID
	Roles      map[DocumentRole]*RoleSlot
	Comparison string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSession creates an empty session with both role slots absent.
func NewSession(id uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		ID: id,
		Roles: map[DocumentRole]*RoleSlot{
			RoleInvoice:       {},
			RolePurchaseOrder: {},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Slot returns the slot for the given role.
func (s *Session) Slot(role DocumentRole) *RoleSlot {
	return s.Roles[role]
}

// StoreFile records a fresh temp file handle for the role. A new upload
// always invalidates previously extracted content for that role; the
// prior scratch file, if any, is left orphaned.
func (s *Session) StoreFile(role DocumentRole, f *TempFile) {
	slot := s.Roles[role]
	slot.File = f
	slot.Content = nil
	s.UpdatedAt = time.Now()
}

// StoreContent records extracted content for the role, replacing any
// previous value wholesale.
func (s *Session) StoreContent(role DocumentRole, c *ExtractedContent) {
	s.Roles[role].Content = c
	s.UpdatedAt = time.Now()
}

// SetComparison stores the last comparison result for download.
func (s *Session) SetComparison(text string) {
	s.Comparison = text
	s.UpdatedAt = time.Now()
}

// CanCompare reports whether both roles have a stored temp file handle.
// Extracted content may still be absent; it is lazily recomputed.
func (s *Session) CanCompare() bool {
	return s.Roles[RoleInvoice].File != nil && s.Roles[RolePurchaseOrder].File != nil
}
