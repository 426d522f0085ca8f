// Command derpi is a small query tool for the Derpibooru API, exercising
// the go-derpi client from the terminal.
//
// Usage:
//
//	derpi [-config path] search [-q query] [-sort field] [-order asc|desc] [-page n] [-filter id]
//	derpi [-config path] image <id>
//	derpi [-config path] user <name>
//	derpi [-config path] tag <name>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	derpi "github.com/BytewaveMLP/go-derpi"
	"github.com/BytewaveMLP/go-derpi/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: derpi [-config path] <search|image|user|tag> ...")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "derpi: %v\n", err)
		return 1
	}

	client, err := derpi.NewClient(derpi.Options{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		FilterID:  cfg.FilterID,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "derpi: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := dispatch(ctx, client, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "derpi: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, client *derpi.Client, command string, args []string) error {
	switch command {
	case "search":
		return runSearch(ctx, client, args)
	case "image":
		return runImage(ctx, client, args)
	case "user":
		return runUser(ctx, client, args)
	case "tag":
		return runTag(ctx, client, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSearch(ctx context.Context, client *derpi.Client, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	query := fs.String("q", "*", "search query")
	sortField := fs.String("sort", string(derpi.SortCreationDate), "sort field")
	sortOrder := fs.String("order", string(derpi.SortDescending), "sort order (asc/desc)")
	page := fs.Int("page", 0, "page number")
	filter := fs.Int("filter", 0, "filter id (0 uses config/default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	results, err := client.Search(ctx, derpi.SearchOptions{
		Query:     *query,
		SortField: derpi.SortField(*sortField),
		SortOrder: derpi.SortOrder(*sortOrder),
		Page:      *page,
		FilterID:  *filter,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", titleStyle.Render(results.Query), countStyle.Render(strconv.Itoa(results.Total)+" results"))
	for _, img := range results.Images {
		line := fmt.Sprintf("#%d %dx%d score %d", img.ID, img.Width, img.Height, img.Score)
		artist := img.ArtistName()
		if artist != "" {
			line += " " + labelStyle.Render("by "+artist)
		}
		fmt.Println(line)
	}
	return nil
}

func runImage(ctx context.Context, client *derpi.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: derpi image <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("image id %q: %w", args[0], err)
	}

	img, err := client.FetchImage(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("#%d %s", img.ID, img.FileName)))
	fmt.Printf("%s %dx%d (%s)\n", labelStyle.Render("size"), img.Width, img.Height, img.OriginalFormat)
	fmt.Printf("%s %d (%d up / %d down), %d faves\n", labelStyle.Render("score"), img.Score, img.Upvotes, img.Downvotes, img.Favorites)
	fmt.Printf("%s %s\n", labelStyle.Render("uploaded"), img.CreatedAt)
	fmt.Printf("%s %s\n", labelStyle.Render("tags"), img.TagString)
	fmt.Printf("%s %s\n", labelStyle.Render("full"), img.Representations.Full)
	return nil
}

func runUser(ctx context.Context, client *derpi.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: derpi user <name>")
	}

	user, err := client.FetchUser(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(user.Name) + " " + labelStyle.Render(user.Role))
	fmt.Printf("%s %s\n", labelStyle.Render("joined"), user.CreatedAt)
	fmt.Printf("%s %d uploads, %d comments, %d posts\n", labelStyle.Render("activity"), user.Uploads, user.Comments, user.Posts)
	for _, award := range user.Awards {
		fmt.Printf("%s %s\n", labelStyle.Render("award"), award.Title)
	}
	return nil
}

func runTag(ctx context.Context, client *derpi.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: derpi tag <name>")
	}

	tag, err := client.FetchTag(ctx, args[0], nil)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(tag.Name) + " " + countStyle.Render(strconv.Itoa(tag.ImageCount)+" images"))
	if tag.Category != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("category"), tag.Category)
	}
	if tag.Description != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("about"), tag.Description)
	}
	if tag.AliasedToID != nil {
		canonical, err := client.FetchAliasedTag(ctx, tag)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", labelStyle.Render("alias of"), canonical.Name)
	}
	return nil
}
