// cmd/tools/draft-admin/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"college-portal/internal/common/config"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/storage"
	draftstore "college-portal/internal/features/application/draft-store"
	videonotes "college-portal/internal/features/tutorials/video-notes"
)

var configPath string

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	notesCmd := flag.NewFlagSet("notes", flag.ExitOnError)

	for _, fs := range []*flag.FlagSet{listCmd, showCmd, deleteCmd, exportCmd, notesCmd} {
		fs.StringVar(&configPath, "config", "", "Config file (defaults to configs/config.yaml lookup)")
	}

	idShow := showCmd.String("id", "", "Draft ID")
	idDelete := deleteCmd.String("id", "", "Draft ID to delete")
	out := exportCmd.String("out", "drafts-export.json", "Output file")
	videoID := notesCmd.String("video", "", "Video ID; empty lists videos with notes")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		run(ctx, func(drafts *draftstore.Store, _ *videonotes.NoteStore) error {
			return listDrafts(ctx, drafts)
		})

	case "show":
		showCmd.Parse(os.Args[2:])
		if *idShow == "" {
			fmt.Println("Error: id is required for show.")
			showCmd.Usage()
			os.Exit(1)
		}
		run(ctx, func(drafts *draftstore.Store, _ *videonotes.NoteStore) error {
			d, ok := drafts.LoadDraft(ctx, *idShow)
			if !ok {
				return fmt.Errorf("draft %s not found", *idShow)
			}
			return printJSON(d)
		})

	case "delete":
		deleteCmd.Parse(os.Args[2:])
		if *idDelete == "" {
			fmt.Println("Error: id is required for delete.")
			deleteCmd.Usage()
			os.Exit(1)
		}
		run(ctx, func(drafts *draftstore.Store, _ *videonotes.NoteStore) error {
			drafts.DeleteDraft(ctx, *idDelete)
			if err := drafts.LastError(); err != nil {
				return err
			}
			fmt.Printf("Deleted draft: %s\n", *idDelete)
			return nil
		})

	case "export":
		exportCmd.Parse(os.Args[2:])
		run(ctx, func(drafts *draftstore.Store, _ *videonotes.NoteStore) error {
			return exportDrafts(ctx, drafts, *out)
		})

	case "notes":
		notesCmd.Parse(os.Args[2:])
		run(ctx, func(_ *draftstore.Store, notes *videonotes.NoteStore) error {
			if *videoID == "" {
				ids, err := notes.VideoIDs(ctx)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			}
			return printJSON(notes.List(ctx, *videoID))
		})

	case "help":
		fallthrough
	default:
		help()
	}
}

// run opens the configured backend, builds the stores and calls fn.
func run(ctx context.Context, fn func(*draftstore.Store, *videonotes.NoteStore) error) {
	if err := withStores(ctx, fn); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func withStores(ctx context.Context, fn func(*draftstore.Store, *videonotes.NoteStore) error) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewStructured("warn", "console")
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer backend.Close()

	drafts, err := draftstore.NewStore(draftstore.StoreDependencies{Storage: backend, Logger: log}, draftstore.DefaultConfig())
	if err != nil {
		return err
	}
	notes, err := videonotes.NewNoteStore(videonotes.NoteDependencies{Storage: backend, Logger: log}, videonotes.DefaultConfig())
	if err != nil {
		return err
	}
	return fn(drafts, notes)
}

func listDrafts(ctx context.Context, drafts *draftstore.Store) error {
	all := drafts.LoadAllDrafts(ctx)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOLLEGE\tPROGRAM\tPROGRESS\tUPDATED")
	for _, d := range all {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\n",
			d.ID, d.CollegeName, d.Program, d.CompletionPercentage, d.UpdatedAt.Format(time.RFC3339))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d drafts\n", len(all))
	return nil
}

func exportDrafts(ctx context.Context, drafts *draftstore.Store, path string) error {
	data, err := json.MarshalIndent(drafts.LoadAllDrafts(ctx), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported drafts to %s\n", path)
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func help() {
	fmt.Print(`
Usage: draft-admin <command> [flags]

Commands:
  list    List saved drafts
  show    Print one draft as JSON
  delete  Delete a draft
  export  Write every draft to a JSON file
  notes   List videos with notes, or the notes of one video
  help    Show this help message

Examples:
  draft-admin list
  draft-admin show -id draft_1709283600000
  draft-admin delete -id draft_1709283600000 -config configs/config.yaml
  draft-admin export -out backups/drafts.json
  draft-admin notes -video video1

Use 'draft-admin <command> -h' for more information about a command.
` + "\n")
}
