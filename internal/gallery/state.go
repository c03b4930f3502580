package gallery

// State is the modal/filter state machine over the catalog. Transition
// guards make illegal combinations unrepresentable: paging never happens on
// a video or single-image record, the media index is always a valid index
// into the active record's media while a record is open, and the compare
// toggle only moves on records carrying both before and after images.
//
// State is event-driven and single-threaded; it holds no locks.
type State struct {
	selected   Category
	active     *Installation
	mediaIndex int
	compare    bool
}

// NewState returns the initial state: category "all", no active record.
func NewState() *State {
	return &State{selected: CategoryAll}
}

func (s *State) Selected() Category    { return s.selected }
func (s *State) Active() *Installation { return s.active }
func (s *State) Compare() bool         { return s.compare }

// MediaIndex is meaningful only while a record is open.
func (s *State) MediaIndex() int { return s.mediaIndex }

// Visible returns the records matching the selected category, in catalog
// order.
func (s *State) Visible() []Installation {
	return Filter(s.selected)
}

// SetCategory replaces the filter. Unknown values are ignored so the
// selected category always stays within the known set.
func (s *State) SetCategory(cat Category) {
	if !ValidCategory(cat) {
		return
	}
	s.selected = cat
}

// Open makes ins the active record and resets all paging state.
func (s *State) Open(ins *Installation) {
	if ins == nil {
		return
	}
	s.active = ins
	s.mediaIndex = 0
	s.compare = false
}

// Close clears the active record and discards all transient paging state.
func (s *State) Close() {
	s.active = nil
	s.mediaIndex = 0
	s.compare = false
}

// pageable reports whether the active record supports media paging.
func (s *State) pageable() bool {
	return s.active != nil && !s.active.IsVideo && len(s.active.MediaItems) > 1
}

// NextMedia advances the media index with wraparound. No-op on a video or
// single-item record.
func (s *State) NextMedia() {
	if !s.pageable() {
		return
	}
	if s.mediaIndex == len(s.active.MediaItems)-1 {
		s.mediaIndex = 0
		return
	}
	s.mediaIndex++
}

// PreviousMedia retreats the media index with wraparound under the same
// guard as NextMedia.
func (s *State) PreviousMedia() {
	if !s.pageable() {
		return
	}
	if s.mediaIndex == 0 {
		s.mediaIndex = len(s.active.MediaItems) - 1
		return
	}
	s.mediaIndex--
}

// SelectMedia jumps to index i. Valid only for in-range indexes on an open
// non-video record.
func (s *State) SelectMedia(i int) {
	if s.active == nil || s.active.IsVideo {
		return
	}
	if i < 0 || i >= len(s.active.MediaItems) {
		return
	}
	s.mediaIndex = i
}

// ToggleCompare flips the before/after view. No-op unless the active record
// has both images.
func (s *State) ToggleCompare() {
	if s.active == nil || !s.active.HasCompare() {
		return
	}
	s.compare = !s.compare
}
