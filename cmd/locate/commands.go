package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/locate"
	"github.com/poiesic/locate/locator"
)

var errMissingArgument = errors.New("missing argument")

func parseCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: LOCATOR", errMissingArgument)
	}
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		for _, text := range c.Args().Slice() {
			q, err := w.Parse(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, locator.Render(q))
		}
		return nil
	})
}

func findCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: exactly one LOCATOR is required", errMissingArgument)
	}
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		found, err := w.Find(ctx, c.String("snapshot"), c.Args().First())
		if err != nil {
			return err
		}
		if c.Bool("first") && len(found) > 1 {
			found = found[:1]
		}
		for _, e := range found {
			fmt.Fprintln(c.App.Writer, e.String())
		}
		return nil
	})
}

func snapshotAddCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("%w: FILE", errMissingArgument)
	}

	name := c.String("name")
	var (
		content []byte
		err     error
	)
	if path == "-" {
		if name == "" {
			return fmt.Errorf("%w: --name is required when reading stdin", errMissingArgument)
		}
		content, err = io.ReadAll(c.App.Reader)
	} else {
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		snapshot, err := w.AddSnapshot(ctx, name, c.String("url"), string(content))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s %016x\n", snapshot.Name, uint64(snapshot.Id))
		return nil
	})
}

func snapshotListCommand(c *cli.Context) error {
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		snapshots, err := w.Snapshots(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tID\tCAPTURED\tURL")
		for _, s := range snapshots {
			fmt.Fprintf(tw, "%s\t%016x\t%s\t%s\n", s.Name, uint64(s.Id), s.CapturedAt.Format(time.RFC3339), s.URL)
		}
		return tw.Flush()
	})
}

func snapshotRemoveCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: NAME", errMissingArgument)
	}
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		for _, name := range c.Args().Slice() {
			if err := w.DeleteSnapshot(ctx, name); err != nil {
				return fmt.Errorf("snapshot %s: %w", name, err)
			}
		}
		return nil
	})
}

func aliasSetCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("%w: NAME LOCATOR", errMissingArgument)
	}
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		_, err := w.SaveAlias(ctx, c.Args().Get(0), c.Args().Get(1))
		return err
	})
}

func aliasListCommand(c *cli.Context) error {
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		aliases, err := w.Aliases(ctx)
		if err != nil {
			return err
		}
		prefix := c.String("prefix")
		tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
		for _, a := range aliases {
			if strings.HasPrefix(a.Name, prefix) {
				fmt.Fprintf(tw, "%s%s\t%s\n", locate.AliasPrefix, a.Name, a.Locator)
			}
		}
		return tw.Flush()
	})
}

func aliasRemoveCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: NAME", errMissingArgument)
	}
	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		for _, name := range c.Args().Slice() {
			if err := w.DeleteAlias(ctx, strings.TrimPrefix(name, locate.AliasPrefix)); err != nil {
				return fmt.Errorf("alias %s: %w", name, err)
			}
		}
		return nil
	})
}

func batchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: LOCATOR", errMissingArgument)
	}

	var opts []locate.WorkspaceOption
	if c.Bool("progress") {
		opts = append(opts, locate.WithProgress(c.App.ErrWriter))
	}

	return withWorkspace(c, func(ctx context.Context, w *locate.Workspace) error {
		report, err := w.RunBatch(ctx, c.StringSlice("snapshot"), c.Args().Slice())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SNAPSHOT\tLOCATOR\tMATCHES\tERROR")
		for _, r := range report.Results {
			errText := ""
			if r.Err != nil {
				errText = r.Err.Error()
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Snapshot, r.Locator, r.Matches(), errText)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "run %s: %d checks, %d matched, %d failed in %s\n",
			report.RunID, len(report.Results), report.Matched(), report.Failed(), report.Duration.Round(time.Millisecond))
		return nil
	}, opts...)
}
