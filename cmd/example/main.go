// Command example wires the content core end to end: it seeds a small corpus
// from embedded markdown, runs a few searches, and walks a submission through
// the editorial pipeline.
package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	wala "github.com/pryank18/ArchaeologyWala"
)

//go:embed seeds/*.md
var seedFS embed.FS

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("example: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg := wala.DefaultConfig()
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "info"
	cfg.Review.Token = envOr("WALA_REVIEW_TOKEN", "trowel-and-brush")
	if dsn := os.Getenv("WALA_SQLITE_DSN"); dsn != "" {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.DSN = dsn
	}

	module, err := wala.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer module.Close()

	seeds, err := fs.Sub(seedFS, "seeds")
	if err != nil {
		return err
	}
	added, err := module.LoadSeed(ctx, seeds)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d posts\n", added)

	for _, post := range module.Content().Posts(ctx) {
		fmt.Printf("  %-26s %s (%d min)\n", post.Slug, post.Title, post.Minutes)
	}

	for _, query := range []string{"", "pottary", "survey"} {
		fmt.Printf("search %q -> %v\n", query, module.Search(query))
	}

	outline := module.Documents().Outline(mustRead(seeds, "pottery-101.md"))
	fmt.Println("outline of pottery-101:")
	for _, heading := range outline {
		fmt.Printf("  %s#%s %s\n", strings.Repeat("#", heading.Level), heading.ID, heading.Text)
	}

	// Editorial round trip: submit, unlock, approve.
	sub, err := module.Submissions().Submit(ctx, wala.SubmitRequest{
		Name:  "Meera",
		Email: "meera@example.com",
		Title: "Kiln firings of the Deccan",
		Tags:  "ceramics, kilns",
		Body:  "Reduction firing leaves a grey core in most local fabrics.",
		Agree: true,
	})
	if err != nil {
		return err
	}
	fmt.Printf("submission %d pending\n", sub.ID)

	session, err := module.Unlock(ctx, cfg.Review.Token)
	if err != nil {
		return err
	}
	if err := module.Commands().ApproveSubmission(ctx, wala.ApproveSubmissionCommand{
		SubmissionID: sub.ID,
		Session:      session,
	}); err != nil {
		return err
	}
	fmt.Printf("approved, corpus now %d posts\n", len(module.Content().Posts(ctx)))

	html, err := module.Preview("The sherds were recorded in situ before lifting.")
	if err != nil {
		return err
	}
	fmt.Printf("preview: %s\n", html)

	return nil
}

func mustRead(fsys fs.FS, name string) string {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Fatalf("example: read %s: %v", name, err)
	}
	return string(data)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
