// cmd/tools/catalog-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"college-portal/pkg/catalog"
)

var catalogPath string

func main() {
	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	for _, fs := range []*flag.FlagSet{initCmd, addCmd, updateCmd, validateCmd} {
		fs.StringVar(&catalogPath, "path", "configs/catalog.json", "Path to catalog file")
	}

	// Add command flags
	kind := addCmd.String("kind", "document", "Entry kind (video or document)")
	idAdd := addCmd.String("id", "", "Entry ID (e.g., doc3)")
	title := addCmd.String("title", "", "Title")
	description := addCmd.String("description", "", "Description")
	url := addCmd.String("url", "", "Portal URL (e.g., /documents/fafsa)")
	videoURL := addCmd.String("videoUrl", "", "Media URL, videos only")
	duration := addCmd.Float64("duration", 0, "Length in seconds, videos only")
	tags := addCmd.String("tags", "", "Comma-separated tags")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Entry ID to update")
	field := updateCmd.String("field", "", "Field to update (title, description, url, tags, videoUrl, duration)")
	value := updateCmd.String("value", "", "New value for the field")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		initCmd.Parse(os.Args[2:])
		c := catalog.Default()
		c.LastUpdated = time.Now().Format(time.RFC3339)
		if err := catalog.SaveCatalog(c, catalogPath); err != nil {
			fmt.Printf("Error writing catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default catalog to %s\n", catalogPath)

	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *title == "" || *description == "" {
			fmt.Println("Error: id, title, and description are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		entry := catalog.Entry{
			ID:          *idAdd,
			Title:       *title,
			Description: *description,
			URL:         *url,
			Tags:        splitTags(*tags),
		}
		if err := addEntry(*kind, entry, *videoURL, *duration); err != nil {
			fmt.Printf("Error adding entry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added %s: %s\n", *kind, *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" {
			fmt.Println("Error: id and field are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateEntry(*idUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating entry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateCatalog(); err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}

	case "help":
		fallthrough
	default:
		help()
	}
}

func loadOrEmpty() (*catalog.Catalog, error) {
	c, err := catalog.LoadCatalog(catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &catalog.Catalog{Version: "1.0.0", Videos: []catalog.Video{}, Documents: []catalog.Entry{}}, nil
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

func addEntry(kind string, entry catalog.Entry, videoURL string, duration float64) error {
	c, err := loadOrEmpty()
	if err != nil {
		return err
	}

	switch kind {
	case "video":
		if _, ok := c.Video(entry.ID); ok {
			return fmt.Errorf("video with ID %s already exists", entry.ID)
		}
		c.Videos = append(c.Videos, catalog.Video{Entry: entry, VideoURL: videoURL, Duration: duration})
	case "document":
		for _, d := range c.Documents {
			if d.ID == entry.ID {
				return fmt.Errorf("document with ID %s already exists", entry.ID)
			}
		}
		c.Documents = append(c.Documents, entry)
	default:
		return fmt.Errorf("unknown kind: %s", kind)
	}

	c.LastUpdated = time.Now().Format(time.RFC3339)
	return catalog.SaveCatalog(c, catalogPath)
}

func updateEntry(id, field, value string) error {
	c, err := catalog.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var entry *catalog.Entry
	var video *catalog.Video
	for i := range c.Videos {
		if c.Videos[i].ID == id {
			video = &c.Videos[i]
			entry = &video.Entry
			break
		}
	}
	if entry == nil {
		for i := range c.Documents {
			if c.Documents[i].ID == id {
				entry = &c.Documents[i]
				break
			}
		}
	}
	if entry == nil {
		return fmt.Errorf("entry with ID %s not found", id)
	}

	switch field {
	case "title":
		entry.Title = value
	case "description":
		entry.Description = value
	case "url":
		entry.URL = value
	case "tags":
		entry.Tags = splitTags(value)
	case "videoUrl", "duration":
		if video == nil {
			return fmt.Errorf("field %s only applies to videos", field)
		}
		if field == "videoUrl" {
			video.VideoURL = value
			break
		}
		d, err := strconv.ParseFloat(value, 64)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid duration value: %q", value)
		}
		video.Duration = d
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	c.LastUpdated = time.Now().Format(time.RFC3339)
	return catalog.SaveCatalog(c, catalogPath)
}

func validateCatalog() error {
	c, err := catalog.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	if len(c.Videos) == 0 && len(c.Documents) == 0 {
		return fmt.Errorf("catalog contains no entries")
	}
	for _, v := range c.Videos {
		if v.Title == "" {
			return fmt.Errorf("video %s missing required field: Title", v.ID)
		}
		for _, seg := range v.Transcript {
			if seg.End < seg.Start {
				return fmt.Errorf("video %s has a transcript segment ending before it starts", v.ID)
			}
		}
	}
	for _, d := range c.Documents {
		if d.Title == "" {
			return fmt.Errorf("document %s missing required field: Title", d.ID)
		}
	}

	fmt.Printf("Catalog validation passed. Found %d videos and %d documents.\n", len(c.Videos), len(c.Documents))
	return nil
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func help() {
	fmt.Print(`
Usage: catalog-updater <command> [flags]

Commands:
  init     Write the built-in catalog to a file
  add      Add a video or document
  update   Update an existing entry's field
  validate Validate the catalog file
  help     Show this help message

Examples:
  catalog-updater init -path configs/catalog.json
  catalog-updater add -kind document -id doc3 -title "Campus Visit Checklist" -description "What to ask on a tour" -url /documents/campus-visit
  catalog-updater update -id video2 -field duration -value 420
  catalog-updater validate -path configs/catalog.json

Use 'catalog-updater <command> -h' for more information about a command.
` + "\n")
}
