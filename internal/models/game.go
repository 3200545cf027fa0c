package models

// Game is a cached snapshot of catalog data. It is duplicated by value into
// every list that references it; updating one copy does not propagate.
type Game struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CoverImage string `json:"coverImage,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Playtime   int    `json:"playtime,omitempty"`
}

// Genre is a catalog genre entry used by the explore pages.
type Genre struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	GamesCount      int    `json:"games_count"`
	ImageBackground string `json:"image_background"`
}

// ListName identifies one of the five per-user game lists.
type ListName string

const (
	ListPlaying         ListName = "playing"
	ListCompleted       ListName = "completed"
	ListDropped         ListName = "dropped"
	ListWishlist        ListName = "wishlist"
	ListRecommendations ListName = "recommendations"
)

// CuratedLists are the four lists subject to the at-most-one-list invariant.
// The recommendations list is a cache and is exempt.
var CuratedLists = [4]ListName{ListPlaying, ListCompleted, ListDropped, ListWishlist}

// Valid reports whether l names one of the five lists.
func (l ListName) Valid() bool {
	return l == ListRecommendations || l.Curated()
}

// Curated reports whether l is one of the four user-curated lists.
func (l ListName) Curated() bool {
	switch l {
	case ListPlaying, ListCompleted, ListDropped, ListWishlist:
		return true
	}
	return false
}

// GameState is the five-list snapshot owned by exactly one user.
type GameState struct {
	Playing         []Game `json:"playing"`
	Completed       []Game `json:"completed"`
	Dropped         []Game `json:"dropped"`
	Wishlist        []Game `json:"wishlist"`
	Recommendations []Game `json:"recommendations"`
}

// NewGameState returns an empty state with all five lists allocated.
func NewGameState() *GameState {
	return &GameState{
		Playing:         []Game{},
		Completed:       []Game{},
		Dropped:         []Game{},
		Wishlist:        []Game{},
		Recommendations: []Game{},
	}
}

// List returns the named list. Callers must not rely on mutating the
// returned slice; the reducer replaces lists wholesale.
func (s *GameState) List(name ListName) []Game {
	switch name {
	case ListPlaying:
		return s.Playing
	case ListCompleted:
		return s.Completed
	case ListDropped:
		return s.Dropped
	case ListWishlist:
		return s.Wishlist
	case ListRecommendations:
		return s.Recommendations
	}
	return nil
}

// SetList replaces the named list.
func (s *GameState) SetList(name ListName, games []Game) {
	switch name {
	case ListPlaying:
		s.Playing = games
	case ListCompleted:
		s.Completed = games
	case ListDropped:
		s.Dropped = games
	case ListWishlist:
		s.Wishlist = games
	case ListRecommendations:
		s.Recommendations = games
	}
}

// Normalize replaces nil lists with empty ones, so partially-initialized
// records loaded from storage always present five lists.
func (s *GameState) Normalize() {
	for _, name := range []ListName{ListPlaying, ListCompleted, ListDropped, ListWishlist, ListRecommendations} {
		if s.List(name) == nil {
			s.SetList(name, []Game{})
		}
	}
}

// InCuratedList reports whether the game id is present in any of the four
// curated lists.
func (s *GameState) InCuratedList(id int) bool {
	for _, name := range CuratedLists {
		for _, g := range s.List(name) {
			if g.ID == id {
				return true
			}
		}
	}
	return false
}

// Names returns the game names of the given list, in insertion order.
func (s *GameState) Names(name ListName) []string {
	list := s.List(name)
	names := make([]string, 0, len(list))
	for _, g := range list {
		names = append(names, g.Name)
	}
	return names
}
