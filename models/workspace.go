package models

import "time"

// ChecklistItem is a single entry of a card checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Card represents a kanban card.
// Field names follow the persisted wire format and must stay stable.
type Card struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Labels           []string        `json:"labels,omitempty"`
	Priority         *string         `json:"priority,omitempty"`
	Checklist        []ChecklistItem `json:"checklist,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	ArchivedAt       *string         `json:"archivedAt,omitempty"`
	OriginalColumnID *string         `json:"originalColumnId,omitempty"`
}

// Column is an ordered list of cards inside a board.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// Board is an ordered list of columns plus the cards archived off the board.
type Board struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Columns       []Column `json:"columns"`
	ArchivedCards []Card   `json:"archivedCards,omitempty"`
}

// Collection groups bookmarks. The three built-in collections ("all",
// "favorites", "archive") are seeded into every new workspace and carry a
// nil IsCustom.
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	IsCustom *bool  `json:"isCustom,omitempty"`
}

// Bookmark is a single saved link.
type Bookmark struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Description  string   `json:"description,omitempty"`
	Favicon      *string  `json:"favicon,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	CollectionID *string  `json:"collectionId,omitempty"`
	IsFavorite   bool     `json:"isFavorite"`
	IsArchived   bool     `json:"isArchived"`
	CreatedAt    string   `json:"createdAt"`
}

// CustomTag is a user-defined bookmark tag with a display color.
type CustomTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Note is a free-form workspace note.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AppData is the full local workspace document as persisted on disk.
//
// ActiveView is local UI state only: it is kept in the document but excluded
// from the synchronized projection (see SyncPayload), so a remote replica can
// never overwrite which view the user is currently looking at.
//
// LastModified is the sync watermark. Every mutation that is going to be
// persisted or synced must bump it via Touch; it is the sole
// conflict-resolution signal between replicas.
type AppData struct {
	Boards       []Board              `json:"boards"`
	ActiveBoard  *string              `json:"activeBoard"`
	Theme        string               `json:"theme"`
	ActiveView   string               `json:"activeView"`
	Bookmarks    []Bookmark           `json:"bookmarks"`
	Collections  []Collection         `json:"collections"`
	CustomTags   map[string]CustomTag `json:"customTags"`
	Notes        []Note               `json:"notes"`
	CreatedAt    string               `json:"createdAt,omitempty"`
	LastModified string               `json:"lastModified,omitempty"`
	SyncEnabled  bool                 `json:"syncEnabled"`
}

// SyncedAppData is the synchronized projection of AppData: a strict subset of
// its fields, identical wire names. ActiveView never leaves the device.
type SyncedAppData struct {
	Boards       []Board              `json:"boards"`
	ActiveBoard  *string              `json:"activeBoard"`
	Theme        string               `json:"theme"`
	Bookmarks    []Bookmark           `json:"bookmarks"`
	Collections  []Collection         `json:"collections"`
	CustomTags   map[string]CustomTag `json:"customTags"`
	Notes        []Note               `json:"notes"`
	CreatedAt    string               `json:"createdAt,omitempty"`
	LastModified string               `json:"lastModified,omitempty"`
	SyncEnabled  bool                 `json:"syncEnabled"`
}

// SyncPayload returns the synchronized subset of the workspace.
func (d *AppData) SyncPayload() SyncedAppData {
	return SyncedAppData{
		Boards:       d.Boards,
		ActiveBoard:  d.ActiveBoard,
		Theme:        d.Theme,
		Bookmarks:    d.Bookmarks,
		Collections:  d.Collections,
		CustomTags:   d.CustomTags,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		LastModified: d.LastModified,
		SyncEnabled:  d.SyncEnabled,
	}
}

// ApplyRemote merges a remote projection into the local document, keeping the
// local-only ActiveView untouched. remoteLastModified becomes the new local
// watermark.
func (d *AppData) ApplyRemote(remote SyncedAppData, remoteLastModified string) {
	d.Boards = remote.Boards
	d.ActiveBoard = remote.ActiveBoard
	d.Theme = remote.Theme
	d.Bookmarks = remote.Bookmarks
	d.Collections = remote.Collections
	d.CustomTags = remote.CustomTags
	d.Notes = remote.Notes
	if remote.CreatedAt != "" {
		d.CreatedAt = remote.CreatedAt
	}
	d.SyncEnabled = remote.SyncEnabled
	d.LastModified = remoteLastModified
}

// Touch bumps the watermark. The new value is guaranteed to be strictly
// greater than the previous one even when the wall clock did not advance
// between two mutations within the same nanosecond tick.
func (d *AppData) Touch() {
	now := time.Now().UTC()
	if d.LastModified != "" {
		if prev, err := time.Parse(time.RFC3339Nano, d.LastModified); err == nil && !now.After(prev) {
			now = prev.Add(time.Nanosecond)
		}
	}
	d.LastModified = now.Format(time.RFC3339Nano)
}

const (
	DefaultTheme = "dark"
	DefaultView  = "boards"
)

// DefaultCollections returns the three built-in bookmark collections seeded
// into every new workspace.
func DefaultCollections() []Collection {
	return []Collection{
		{ID: "all", Name: "All Bookmarks", Icon: "bookmark"},
		{ID: "favorites", Name: "Favorites", Icon: "star"},
		{ID: "archive", Name: "Archive", Icon: "archive"},
	}
}

// DefaultAppData builds the starter workspace used on first run and as the
// fallback when the persisted document cannot be parsed.
func DefaultAppData() AppData {
	activeBoard := "default-board"
	return AppData{
		Boards: []Board{{
			ID:   "default-board",
			Name: "My First Project",
			Columns: []Column{
				{
					ID:    "col-backlog",
					Title: "Backlog",
					Cards: []Card{{
						ID:          "card-1",
						Title:       "Welcome!",
						Description: "This is your first card. Drag it to another column or create new cards to get started.",
						CreatedAt:   time.Now().UTC().Format(time.RFC3339),
					}},
				},
				{ID: "col-todo", Title: "To Do", Cards: []Card{}},
				{ID: "col-progress", Title: "In Progress", Cards: []Card{}},
				{ID: "col-done", Title: "Done", Cards: []Card{}},
			},
			ArchivedCards: []Card{},
		}},
		ActiveBoard: &activeBoard,
		Theme:       DefaultTheme,
		ActiveView:  DefaultView,
		Bookmarks:   []Bookmark{},
		Collections: DefaultCollections(),
		CustomTags:  map[string]CustomTag{},
		Notes:       []Note{},
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
