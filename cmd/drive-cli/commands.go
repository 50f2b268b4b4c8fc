package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"file-relay/internal/domain/entities"
	"file-relay/internal/usecases"
	"file-relay/pkg/errors"
	"file-relay/pkg/file"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type openFunc func() (usecases.DriveService, error)

type cli struct {
	open openFunc
	out  io.Writer
}

func newRootCmd(open openFunc, out io.Writer) *cobra.Command {
	c := &cli{open: open, out: out}

	root := &cobra.Command{
		Use:           "drive-cli",
		Short:         "Manage files on a MEGA or S3 drive",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:     "list [path]",
			Aliases: []string{"ls"},
			Short:   "List files recursively",
			Args:    cobra.MaximumNArgs(1),
			RunE:    c.run(c.list),
		},
		&cobra.Command{
			Use:     "upload <localPath> [remotePath]",
			Aliases: []string{"up"},
			Short:   "Upload a file",
			Args:    cobra.RangeArgs(1, 2),
			RunE:    c.run(c.upload),
		},
		&cobra.Command{
			Use:     "download <remotePath> [localPath]",
			Aliases: []string{"dl"},
			Short:   "Download a file",
			Args:    cobra.RangeArgs(1, 2),
			RunE:    c.run(c.download),
		},
		&cobra.Command{
			Use:     "delete <remotePath>",
			Aliases: []string{"rm"},
			Short:   "Delete a file or folder",
			Args:    cobra.ExactArgs(1),
			RunE:    c.run(c.delete),
		},
		&cobra.Command{
			Use:   "mkdir <folderPath>",
			Short: "Create a folder and any missing parents",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(c.mkdir),
		},
		&cobra.Command{
			Use:   "info <remotePath>",
			Short: "Show information about a file",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(c.info),
		},
	)
	return root
}

type action func(ctx context.Context, svc usecases.DriveService, args []string) error

// run opens one drive session per command and closes it afterwards.
func (c *cli) run(fn action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := c.open()
		if err != nil {
			return err
		}
		defer svc.Close()
		return fn(cmd.Context(), svc, args)
	}
}

func (c *cli) list(ctx context.Context, svc usecases.DriveService, args []string) error {
	folder := "/"
	if len(args) > 0 {
		folder = args[0]
	}
	entries, err := svc.List(ctx, folder)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s\n\n", color.New(color.Bold).Sprintf("Files in %s:", folder))
	if len(entries) == 0 {
		fmt.Fprintln(c.out, color.HiBlackString("  (empty)"))
		return nil
	}
	for _, e := range entries {
		if e.IsFolder() {
			fmt.Fprintf(c.out, "  [dir]  %s\n", color.BlueString(e.Path))
			continue
		}
		size := ""
		if e.Size > 0 {
			size = file.FormatBytes(e.Size, 2)
		}
		fmt.Fprintf(c.out, "  [file] %s %s\n", e.Path, color.HiBlackString(size))
	}
	return nil
}

func (c *cli) upload(ctx context.Context, svc usecases.DriveService, args []string) error {
	remote := ""
	if len(args) > 1 {
		remote = args[1]
	}
	entry, err := svc.Upload(ctx, args[0], remote)
	if err != nil {
		if errors.HasCode(err, errors.CodeNotFound) {
			return fmt.Errorf("file not found: %s", args[0])
		}
		return fmt.Errorf("upload failed: %w", err)
	}
	fmt.Fprintln(c.out, color.GreenString("Uploaded: %s", entry.Name))
	return nil
}

func (c *cli) download(ctx context.Context, svc usecases.DriveService, args []string) error {
	local := ""
	if len(args) > 1 {
		local = args[1]
	}
	written, err := svc.Download(ctx, args[0], local)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	fmt.Fprintln(c.out, color.GreenString("Downloaded to: %s", written))
	return nil
}

func (c *cli) delete(ctx context.Context, svc usecases.DriveService, args []string) error {
	trashed, err := svc.Delete(ctx, args[0])
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if trashed {
		fmt.Fprintln(c.out, color.GreenString("Moved to rubbish bin: %s", args[0]))
		return nil
	}
	fmt.Fprintln(c.out, color.GreenString("Deleted: %s", args[0]))
	return nil
}

func (c *cli) mkdir(ctx context.Context, svc usecases.DriveService, args []string) error {
	if err := svc.Mkdir(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	fmt.Fprintln(c.out, color.GreenString("Created: %s", args[0]))
	return nil
}

func (c *cli) info(ctx context.Context, svc usecases.DriveService, args []string) error {
	entry, err := svc.Info(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	printInfo(c.out, entry)
	return nil
}

func printInfo(out io.Writer, e *entities.DriveEntry) {
	kind := color.WhiteString("File")
	if e.IsFolder() {
		kind = color.BlueString("Folder")
	}
	fmt.Fprintf(out, "%s\n\n", color.New(color.Bold).Sprint("File Information:"))
	fmt.Fprintf(out, "  Name: %s\n", color.CyanString(e.Name))
	fmt.Fprintf(out, "  Size: %s\n", color.YellowString(file.FormatBytes(e.Size, 2)))
	fmt.Fprintf(out, "  Type: %s\n", kind)
	if !e.Timestamp.IsZero() {
		fmt.Fprintf(out, "  Modified: %s\n", color.HiBlackString(e.Timestamp.Local().Format(time.DateTime)))
	}
}
