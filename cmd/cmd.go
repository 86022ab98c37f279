// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}
}

// setupCommand writes a starter configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Write a starter config.toml",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// statsCommand prints the aggregate collection counters.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show collection stats",
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.Stats,
	}
}

// reviewCommand drives the selection queue.
func reviewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "Select albums and record decisions",
		Commands: []*cli.Command{
			{
				Name:   "next",
				Usage:  "Select the next album to review",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.ReviewNext,
			},
			{
				Name:  "previous",
				Usage: "Show the album selected before a given listen id",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "before",
						Usage:    "Listen id to step back from",
						Required: true,
					},
					jsonFlag(),
				},
				Action: r.ReviewPrevious,
			},
			{
				Name:      "listen",
				Usage:     "Mark an album's latest selection as listened",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}},
				Action:    r.ReviewListen,
			},
			{
				Name:      "skip",
				Usage:     "Mark an album's latest selection as skipped",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}},
				Action:    r.ReviewSkip,
			},
			{
				Name:      "exclude",
				Usage:     "Exclude an album from future selection",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}},
				Action:    r.ReviewExclude,
			},
			{
				Name:      "unexclude",
				Usage:     "Return an excluded album to the selection pool",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}},
				Action:    r.ReviewUnexclude,
			},
			{
				Name:   "excluded",
				Usage:  "List excluded albums",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.ReviewExcluded,
			},
		},
	}
}

func browseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Usage:   "Sort direction: asc or desc",
			Value:   "asc",
		},
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "Filter by artist or title substring",
		},
		&cli.StringFlag{
			Name:  "drill",
			Usage: "Show only the named group",
		},
		&cli.IntFlag{
			Name:  "year",
			Usage: "Narrow a decade group to one year",
		},
		jsonFlag(),
	}
}

// boardCommand browses and curates the Big Board.
func boardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Big Board rankings",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Browse the board grouped by a facet",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "group",
						Aliases: []string{"g"},
						Usage:   "Facet: rank, decade, genre or heatmap",
						Value:   "rank",
					},
					&cli.StringFlag{
						Name:  "show",
						Usage: "Ownership filter: all, owned or unowned",
						Value: "all",
					},
				}, browseFlags()...),
				Action: r.BoardShow,
			},
			{
				Name:  "match",
				Usage: "Link a board row to an owned album",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "rank", Usage: "Board rank to link", Required: true},
					&cli.IntFlag{Name: "album", Usage: "Album id to link it to", Required: true},
					&cli.IntFlag{Name: "year", Usage: "Board year for the row"},
				},
				Action: r.BoardMatch,
			},
			{
				Name:  "unmatch",
				Usage: "Remove the album link from a board row",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "rank", Usage: "Board rank to unlink", Required: true},
				},
				Action: r.BoardUnmatch,
			},
		},
	}
}

// libraryCommand browses the owned collection.
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Owned collection",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Browse the collection bucketed by a facet",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "group",
						Aliases: []string{"g"},
						Usage:   "Facet: artist, title, master_year or release_year",
						Value:   "artist",
					},
				}, browseFlags()...),
				Action: r.LibraryShow,
			},
			{
				Name:      "search",
				Usage:     "Search the collection server-side",
				Arguments: []cli.Argument{&cli.StringArg{Name: "query"}},
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.LibrarySearch,
			},
			{
				Name:  "export",
				Usage: "Export the collection as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.LibraryExport,
			},
		},
	}
}

// historyCommand pages through the selection log.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Selection history, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
			&cli.IntFlag{Name: "per-page", Usage: "Entries per page"},
			&cli.StringFlag{Name: "csv", Usage: "Write the page as CSV to a file"},
			jsonFlag(),
		},
		Action: r.History,
	}
}

// playsCommand lists play counts.
func playsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "plays",
		Usage:  "Albums by play count",
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.Plays,
	}
}

// albumCommand shows and corrects a single album.
func albumCommand(r *Runner) *cli.Command {
	idArg := func() []cli.Argument {
		return []cli.Argument{&cli.StringArg{Name: "album-id"}}
	}
	return &cli.Command{
		Name:  "album",
		Usage: "Album detail and corrections",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Full album detail with play dates",
				Arguments: idArg(),
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.AlbumShow,
			},
			{
				Name:      "open",
				Usage:     "Open the album's Discogs page in a browser",
				Arguments: idArg(),
				Action:    r.AlbumOpen,
			},
			{
				Name:      "set-master",
				Usage:     "Set the master cross-reference (id or Discogs URL)",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}, &cli.StringArg{Name: "master"}},
				Action:    r.AlbumSetMaster,
			},
			{
				Name:      "clear-master",
				Usage:     "Remove the master cross-reference override",
				Arguments: idArg(),
				Action:    r.AlbumClearMaster,
			},
			{
				Name:      "set-release",
				Usage:     "Set the release cross-reference (id or Discogs URL)",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}, &cli.StringArg{Name: "release"}},
				Action:    r.AlbumSetRelease,
			},
			{
				Name:      "set-year",
				Usage:     "Override the display year",
				Arguments: []cli.Argument{&cli.StringArg{Name: "album-id"}, &cli.StringArg{Name: "year"}},
				Action:    r.AlbumSetYear,
			},
			{
				Name:      "clear-year",
				Usage:     "Remove the display-year override",
				Arguments: idArg(),
				Action:    r.AlbumClearYear,
			},
			{
				Name:      "use-release",
				Usage:     "Adopt the release id as the master cross-reference",
				Arguments: idArg(),
				Action:    r.AlbumUseRelease,
			},
		},
	}
}

// syncCommand starts and watches background jobs.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Background jobs on the record service",
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a job (discogs, bigboard or master_years) and watch it",
				Arguments: []cli.Argument{&cli.StringArg{Name: "job"}},
				Action:    r.SyncStart,
			},
			{
				Name:   "status",
				Usage:  "One-shot job status",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.SyncStatus,
			},
		},
	}
}

// tuiCommand launches the interactive terminal interface.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive terminal interface",
		Action: r.TUI,
	}
}
