// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is organized as sections behind a tab bar:
//  1. Home: the review deck (next/previous, listen/skip/exclude) with stats
//     and recent history
//  2. Board: the Big Board grouped by rank tier, decade, genre or heatmap
//  3. Library: the collection bucketed by artist, title or year
//  4. Excluded: albums removed from selection, with un-exclude
//  5. Plays: listening counts per album
//
// Overlays (album detail, exclude confirmation, sync progress, search input)
// stack on top of the active section. The [Model] implements bubbletea's
// standard Init/Update/View pattern; slow calls run as [tea.Cmd] closures
// and report back via message structs. Responses to superseded fetches are
// discarded by generation tag.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
