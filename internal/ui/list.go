package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"selektah/internal/models"
)

var (
	_ list.Item = historyItem{}
	_ list.Item = excludedItem{}
	_ list.Item = playItem{}
)

// historyItem wraps [models.HistoryItem] to implement [list.Item].
type historyItem struct {
	entry models.HistoryItem
}

func (i historyItem) FilterValue() string { return i.entry.Artist + " " + i.entry.Title }
func (i historyItem) Title() string {
	title := fmt.Sprintf("%s - %s", i.entry.Artist, i.entry.Title)
	if i.entry.DisplayYear != 0 {
		title = fmt.Sprintf("%s (%d)", title, i.entry.DisplayYear)
	}
	return title
}
func (i historyItem) Description() string {
	return fmt.Sprintf("%s • %s", i.entry.SelectedTime().Format("Jan 2 15:04"), i.entry.Status())
}

// excludedItem wraps [models.Album] for the excluded list.
type excludedItem struct {
	album models.Album
}

func (i excludedItem) FilterValue() string { return i.album.Artist + " " + i.album.Title }
func (i excludedItem) Title() string {
	return fmt.Sprintf("%s - %s", i.album.Artist, i.album.Title)
}
func (i excludedItem) Description() string {
	if i.album.DisplayYear == 0 {
		return "excluded"
	}
	return fmt.Sprintf("%d • excluded", i.album.DisplayYear)
}

// playItem wraps [models.ListeningStat] for the play-count list.
type playItem struct {
	stat models.ListeningStat
}

func (i playItem) FilterValue() string { return i.stat.Artist + " " + i.stat.Title }
func (i playItem) Title() string {
	return fmt.Sprintf("%s - %s", i.stat.Artist, i.stat.Title)
}
func (i playItem) Description() string {
	if i.stat.ListenCount == 1 {
		return "1 play"
	}
	return fmt.Sprintf("%d plays", i.stat.ListenCount)
}
