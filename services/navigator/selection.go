package navigator

import (
	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/filter"
)

// Phase is the deep-link state of a page.
type Phase int

const (
	// PhaseIdle means no filter has been applied since the page was entered.
	PhaseIdle Phase = iota
	// PhaseFilterApplied means a category was chosen by token or by the user.
	PhaseFilterApplied
)

func (p Phase) String() string {
	if p == PhaseFilterApplied {
		return "filter_applied"
	}
	return "idle"
}

// Selection is the transient, per-page filter state. The zero value is not
// ready for use; call NewSelection.
type Selection struct {
	ActiveCategory models.Category `json:"activeCategory"`
	SearchTerm     string          `json:"searchTerm"`
	OpenItemID     string          `json:"openItemId,omitempty"`
	Phase          Phase           `json:"-"`
}

// NewSelection returns an idle selection showing everything.
func NewSelection() *Selection {
	return &Selection{ActiveCategory: DefaultCategory, Phase: PhaseIdle}
}

// Enter applies the token a page was entered with. It reports whether the
// token was recognized, in which case the caller may focus the matching
// anchor once. Unrecognized tokens leave the selection idle.
func (s *Selection) Enter(token string) bool {
	c := Decode(token)
	if c == DefaultCategory {
		return false
	}
	s.ActiveCategory = c
	s.Phase = PhaseFilterApplied
	return true
}

// Select records a manual category choice. Values outside the enumeration
// select everything.
func (s *Selection) Select(c models.Category) {
	if !c.Valid() {
		c = DefaultCategory
	}
	s.ActiveCategory = c
	s.OpenItemID = ""
	s.Phase = PhaseFilterApplied
}

// Search sets the free-text term.
func (s *Selection) Search(term string) {
	s.SearchTerm = term
}

// Toggle opens id, or closes it if it is already open. Only one item is
// open at a time.
func (s *Selection) Toggle(id string) {
	if s.OpenItemID == id {
		s.OpenItemID = ""
		return
	}
	s.OpenItemID = id
}

// IsOpen reports whether id is the open item.
func (s *Selection) IsOpen(id string) bool {
	return id != "" && s.OpenItemID == id
}

// Fragment is the token to reflect the selection back into the URL.
func (s *Selection) Fragment() string {
	return Encode(s.ActiveCategory)
}

// Visible applies the selection to records.
func Visible[T filter.Record](s *Selection, records []T) []T {
	return filter.Filter(records, s.ActiveCategory, s.SearchTerm)
}
