package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/debounce"
)

func newWatchCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE SELECTOR",
		Short: "Report the match count of SELECTOR each time FILE settles after edits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), app, args[0], args[1])
		},
	}
}

// runWatch blocks until ctx is done. Bursts of writes to path are collapsed
// by the configured debounce delay before the document is re-read.
func runWatch(ctx context.Context, out io.Writer, app *appContext, path, selector string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	report := func(string) {
		doc, err := readDocument(abs)
		if err != nil {
			app.log.Error(err, "reload failed")
			return
		}
		nodes, err := doc.SelectAll(selector)
		if err != nil {
			app.log.Error(err, "selector failed")
			return
		}
		app.log.WithFields(map[string]any{"file": abs, "matches": len(nodes)}).Info("document reloaded")
		fmt.Fprintf(out, "%s: %d matches for %q\n", path, len(nodes), selector)
	}

	opts := app.cfg.DebounceOptions()
	opts.Logger = app.log
	reload, err := debounce.New(report, opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("start watcher", abs, err, "Check the inotify limits of your system.")
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return newCommandError("watch directory", filepath.Dir(abs), err, "Check the directory exists and is readable.")
	}

	report(abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				reload.Trigger(ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.log.Error(err, "watcher error")
		}
	}
}
