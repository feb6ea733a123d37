// Gallery CLI - browse and send email templates from the command line
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mailgallery/mailgallery/internal/locale"
	"github.com/mailgallery/mailgallery/internal/model"
	"github.com/mailgallery/mailgallery/internal/preview"
	"github.com/mailgallery/mailgallery/internal/render"
	"github.com/mailgallery/mailgallery/pkg/db"
	"github.com/mailgallery/mailgallery/pkg/mail"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		listCmd(os.Args[2:])
	case "show":
		showCmd(os.Args[2:])
	case "send":
		sendCmd(os.Args[2:])
	case "version":
		fmt.Println("mailgallery v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Mail Gallery - Email Template CLI

Usage:
  mailgallery <command> [options]

Commands:
  list       List templates in the catalog
  show       Print a template as ready-to-paste email text
  send       Send a template to an address via SMTP
  version    Show version
  help       Show this help

Examples:
  mailgallery list -db=./.data/mailgallery.db
  mailgallery show -index=2
  mailgallery send -index=2 -to=test@example.com

Environment Variables:
  SMTP_USERNAME   SMTP username for sending
  SMTP_PASSWORD   SMTP password for sending
  SMTP_FROMEMAIL  Sender address (defaults to SMTP_USERNAME)`)
}

func openCatalog(path string) ([]renderable, *db.DB) {
	database, err := db.Open(path)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}

	catalog := model.NewCatalogModel(database.SqlConn())
	ctx := context.Background()
	if err := catalog.SeedIfEmpty(ctx); err != nil {
		fmt.Printf("Error seeding catalog: %v\n", err)
		os.Exit(1)
	}

	templates, err := catalog.All(ctx)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	items := make([]renderable, 0, len(templates))
	for _, t := range templates {
		items = append(items, renderable{
			Subject:  t.Subject,
			Body:     t.Body,
			Category: t.CategoryOrDefault(),
		})
	}
	return items, database
}

type renderable struct {
	Subject  string
	Body     string
	Category string
}

func listCmd(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", "./.data/mailgallery.db", "Database path")
	fs.Parse(args)

	items, database := openCatalog(*dbPath)
	defer database.Close()

	fmt.Printf("Templates (%d):\n", len(items))
	for i, t := range items {
		fmt.Printf("  [%d] %s (%s)\n", i, t.Subject, t.Category)
	}
}

func showCmd(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	dbPath := fs.String("db", "./.data/mailgallery.db", "Database path")
	index := fs.Int("index", -1, "Template index")
	lang := fs.String("lang", locale.DefaultCode, "Language for greeting and closing")
	fs.Parse(args)

	items, database := openCatalog(*dbPath)
	defer database.Close()

	if *index < 0 || *index >= len(items) {
		fmt.Printf("Error: index out of range (0..%d)\n", len(items)-1)
		os.Exit(1)
	}

	t := items[*index]
	fmt.Println(render.EmailText(t.Subject, t.Body, *lang))
}

func sendCmd(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	dbPath := fs.String("db", "./.data/mailgallery.db", "Database path")
	index := fs.Int("index", -1, "Template index")
	to := fs.String("to", "", "Recipient email address")
	lang := fs.String("lang", locale.DefaultCode, "Language for greeting and closing")
	fs.Parse(args)

	if *to == "" {
		fmt.Println("Error: -to is required")
		os.Exit(1)
	}
	if err := mail.ValidateAddress(*to); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	smtpCfg := mail.Config{
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  "587",
		Username:  os.Getenv("SMTP_USERNAME"),
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: os.Getenv("SMTP_FROMEMAIL"),
		FromName:  "Mail Gallery",
	}
	if smtpCfg.FromEmail == "" {
		smtpCfg.FromEmail = smtpCfg.Username
	}
	if smtpCfg.Username == "" || smtpCfg.Password == "" {
		fmt.Println("Error: SMTP_USERNAME and SMTP_PASSWORD environment variables required")
		os.Exit(1)
	}

	items, database := openCatalog(*dbPath)
	defer database.Close()

	if *index < 0 || *index >= len(items) {
		fmt.Printf("Error: index out of range (0..%d)\n", len(items)-1)
		os.Exit(1)
	}

	t := items[*index]
	loc := locale.For(*lang)
	html, err := preview.NewRenderer().Email(t.Subject, loc.Greeting, t.Body, loc.Closing)
	if err != nil {
		fmt.Printf("Error rendering email: %v\n", err)
		os.Exit(1)
	}

	if err := mail.Send(smtpCfg, *to, t.Subject, html); err != nil {
		fmt.Printf("Error sending email: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Email sent to %s\n", *to)
}
