package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"jobtrack/internal/app"
	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/model"
	"jobtrack/internal/tracker"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a TrackerApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "contact add").
func newApp(operation string) (*app.TrackerApp, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewTrackerApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", arg)
	}
	return id, nil
}

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Personal job search tracker",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		profileID := uuid.New().String()
		cfg := config.NewConfig(profileID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Profile ID: %s\n", profileID)
		fmt.Printf("Base Dir:   %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Profile ID: %s\n", cfg.ProfileID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Database:   %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		return nil
	},
}

// db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		// Open the store directly; the app layer refuses out-of-date schemas.
		db, err := database.NewFromConfig(cfg.Database, cfg.ProfileID, nil)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}

		fmt.Println("Database schema is up to date.")
		return nil
	},
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup DEST",
	Short: "Write a complete copy of the database to DEST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("db backup")
		if err != nil {
			return err
		}
		defer a.Close()

		dest, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		if err := a.Backup(dest); err != nil {
			return err
		}

		fmt.Printf("Database backed up to %s\n", dest)
		return nil
	},
}

// contact command
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage networking contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("contact add")
		if err != nil {
			return err
		}
		defer a.Close()

		c := &model.Contact{Name: args[0]}
		c.Company, _ = cmd.Flags().GetString("company")
		c.Title, _ = cmd.Flags().GetString("title")
		c.Email, _ = cmd.Flags().GetString("email")
		c.LinkedInURL, _ = cmd.Flags().GetString("linkedin")
		c.Status, _ = cmd.Flags().GetString("status")
		c.Notes, _ = cmd.Flags().GetString("notes")

		id, err := a.Service().SaveContact(c)
		if err != nil {
			return err
		}

		fmt.Printf("Added contact #%d: %s\n", id, c.Name)
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("contact list")
		if err != nil {
			return err
		}
		defer a.Close()

		contacts, err := a.Service().FindContacts("")
		if err != nil {
			return err
		}

		if len(contacts) == 0 {
			fmt.Println("No contacts.")
			return nil
		}

		for _, c := range contacts {
			fmt.Printf("#%d  %-25s  %-20s  %s\n", c.ID, c.Name, c.Company, c.Status)
		}
		return nil
	},
}

var contactShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a contact with its reminders and documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("contact show")
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.Service().GetContact(id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("contact #%d not found", id)
		}

		fmt.Printf("#%d %s\n", c.ID, c.Name)
		fmt.Printf("Company:  %s\n", c.Company)
		fmt.Printf("Title:    %s\n", c.Title)
		fmt.Printf("Email:    %s\n", c.Email)
		fmt.Printf("LinkedIn: %s\n", c.LinkedInURL)
		fmt.Printf("Status:   %s\n", c.Status)
		if c.LastResponse != "" {
			fmt.Printf("Last response: %s\n", c.LastResponse)
		}
		if c.Notes != "" {
			fmt.Printf("Notes: %s\n", c.Notes)
		}

		reminders, err := a.Service().FindByRelated(model.RelatedContact, id)
		if err != nil {
			return err
		}
		if len(reminders) > 0 {
			fmt.Println("\nReminders:")
			for _, r := range reminders {
				fmt.Printf("  #%d  %s  due %s  [%s]\n", r.ID, r.Title, r.DueDate, r.Status)
			}
		}

		docs, err := a.Service().FindDocumentsFor(model.RelatedContact, id)
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			fmt.Println("\nDocuments:")
			for _, d := range docs {
				fmt.Printf("  #%d  %s (%s)\n", d.ID, d.Name, d.Type)
			}
		}

		return nil
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a contact and its reminders and document links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("contact delete")
		if err != nil {
			return err
		}
		defer a.Close()

		deleted, err := a.Service().DeleteContact(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("contact #%d not found", id)
		}

		fmt.Printf("Deleted contact #%d\n", id)
		return nil
	},
}

var contactRemindCmd = &cobra.Command{
	Use:   "remind ID TITLE DUE_DATE",
	Short: "Create a follow-up reminder for a contact (date MM/DD/YYYY)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("contact remind")
		if err != nil {
			return err
		}
		defer a.Close()

		description, _ := cmd.Flags().GetString("description")

		r := &model.Reminder{
			Title:       args[1],
			RelatedType: model.RelatedContact,
			RelatedID:   id,
			Description: description,
			DueDate:     args[2],
		}

		reminderID, err := a.Service().CreateReminder(r)
		if err != nil {
			return err
		}

		fmt.Printf("Created reminder #%d due %s\n", reminderID, r.DueDate)
		return nil
	},
}

// application command
var applicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app"},
	Short:   "Manage job applications",
}

var applicationAddCmd = &cobra.Command{
	Use:   "add TITLE COMPANY",
	Short: "Add a job application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("application add")
		if err != nil {
			return err
		}
		defer a.Close()

		ap := &model.Application{Title: args[0], Company: args[1]}
		ap.ApplicationLink, _ = cmd.Flags().GetString("link")
		ap.Status, _ = cmd.Flags().GetString("status")
		ap.Notes, _ = cmd.Flags().GetString("notes")

		id, err := a.Service().SaveApplication(ap)
		if err != nil {
			return err
		}

		fmt.Printf("Added application #%d: %s at %s\n", id, ap.Title, ap.Company)
		return nil
	},
}

var applicationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("application list")
		if err != nil {
			return err
		}
		defer a.Close()

		apps, err := a.Service().FindApplications("")
		if err != nil {
			return err
		}

		if len(apps) == 0 {
			fmt.Println("No applications.")
			return nil
		}

		for _, ap := range apps {
			fmt.Printf("#%d  %-30s  %-20s  %s\n", ap.ID, ap.Title, ap.Company, ap.Status)
		}
		return nil
	},
}

var applicationDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an application and its reminders and document links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("application delete")
		if err != nil {
			return err
		}
		defer a.Close()

		deleted, err := a.Service().DeleteApplication(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("application #%d not found", id)
		}

		fmt.Printf("Deleted application #%d\n", id)
		return nil
	},
}

// doc command
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage documents",
}

var docAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, _ := cmd.Flags().GetString("type")
		parsedType, err := model.ParseDocumentType(docType)
		if err != nil {
			return err
		}

		a, err := newApp("doc add")
		if err != nil {
			return err
		}
		defer a.Close()

		d := &model.Document{Name: args[0], Type: parsedType}
		d.Version, _ = cmd.Flags().GetString("version")
		d.Notes, _ = cmd.Flags().GetString("notes")

		if file, _ := cmd.Flags().GetString("file"); file != "" {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			d.FileContent = content
			d.FileType = strings.TrimPrefix(filepath.Ext(file), ".")
		}

		id, err := a.Service().SaveDocument(d)
		if err != nil {
			return err
		}

		fmt.Printf("Added document #%d: %s (%s)\n", id, d.Name, d.Type)
		return nil
	},
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("doc list")
		if err != nil {
			return err
		}
		defer a.Close()

		docs, err := a.Service().FindDocuments("")
		if err != nil {
			return err
		}

		if len(docs) == 0 {
			fmt.Println("No documents.")
			return nil
		}

		for _, d := range docs {
			version := d.Version
			if version == "" {
				version = "-"
			}
			fmt.Printf("#%d  %-30s  %-15s  v%s\n", d.ID, d.Name, d.Type, version)
		}
		return nil
	},
}

var docLinkCmd = &cobra.Command{
	Use:   "link DOC_ID TYPE OWNER_ID",
	Short: "Link a document to a contact or application",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseID(args[0])
		if err != nil {
			return err
		}
		relatedType, err := model.ParseRelatedType(args[1])
		if err != nil {
			return err
		}
		ownerID, err := parseID(args[2])
		if err != nil {
			return err
		}

		a, err := newApp("doc link")
		if err != nil {
			return err
		}
		defer a.Close()

		created, err := a.Service().LinkDocument(docID, relatedType, ownerID)
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("Linked document #%d to %s #%d\n", docID, relatedType, ownerID)
		} else {
			fmt.Println("Already linked.")
		}
		return nil
	},
}

var docUnlinkCmd = &cobra.Command{
	Use:   "unlink DOC_ID TYPE OWNER_ID",
	Short: "Remove a document link",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseID(args[0])
		if err != nil {
			return err
		}
		relatedType, err := model.ParseRelatedType(args[1])
		if err != nil {
			return err
		}
		ownerID, err := parseID(args[2])
		if err != nil {
			return err
		}

		a, err := newApp("doc unlink")
		if err != nil {
			return err
		}
		defer a.Close()

		removed, err := a.Service().UnlinkDocument(docID, relatedType, ownerID)
		if err != nil {
			return err
		}

		if removed {
			fmt.Printf("Unlinked document #%d from %s #%d\n", docID, relatedType, ownerID)
		} else {
			fmt.Println("No such link.")
		}
		return nil
	},
}

var docLinksCmd = &cobra.Command{
	Use:   "links DOC_ID",
	Short: "List everything a document is linked to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("doc links")
		if err != nil {
			return err
		}
		defer a.Close()

		links, err := a.Service().FindLinks(docID)
		if err != nil {
			return err
		}

		if len(links) == 0 {
			fmt.Println("No links.")
			return nil
		}

		for _, l := range links {
			fmt.Printf("%s #%d\n", l.RelatedType, l.RelatedID)
		}
		return nil
	},
}

var docSetLinksCmd = &cobra.Command{
	Use:   "set-links DOC_ID TYPE [OWNER_ID...]",
	Short: "Replace all links of one type for a document",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseID(args[0])
		if err != nil {
			return err
		}
		relatedType, err := model.ParseRelatedType(args[1])
		if err != nil {
			return err
		}

		ownerIDs := make([]int64, 0, len(args)-2)
		for _, arg := range args[2:] {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			ownerIDs = append(ownerIDs, id)
		}

		a, err := newApp("doc set-links")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ReplaceLinks(docID, relatedType, ownerIDs); err != nil {
			return err
		}

		fmt.Printf("Document #%d now linked to %d %s(s)\n", docID, len(ownerIDs), relatedType)
		return nil
	},
}

// reminder command
var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage reminders",
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders filtered by status and due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		statusArg, _ := cmd.Flags().GetString("status")
		status, err := tracker.ParseStatusFilter(statusArg)
		if err != nil {
			return err
		}

		var dates tracker.DateFilter
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		if from != "" || to != "" {
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to must be used together")
			}
			dates = tracker.DateBetween(from, to)
		} else {
			dueArg, _ := cmd.Flags().GetString("due")
			dates, err = tracker.ParseDateFilter(dueArg)
			if err != nil {
				return err
			}
		}

		a, err := newApp("reminder list")
		if err != nil {
			return err
		}
		defer a.Close()

		summaries, err := a.Service().FindFiltered(status, dates)
		if err != nil {
			return err
		}

		printSummaries(summaries)
		return nil
	},
}

var reminderUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List open reminders due within the horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		a, err := newApp("reminder upcoming")
		if err != nil {
			return err
		}
		defer a.Close()

		summaries, err := a.Service().FindUpcoming(days)
		if err != nil {
			return err
		}

		printSummaries(summaries)
		return nil
	},
}

var reminderCompleteCmd = &cobra.Command{
	Use:   "complete ID",
	Short: "Mark a reminder completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("reminder complete")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().MarkComplete(id); err != nil {
			return err
		}

		fmt.Printf("Reminder #%d completed\n", id)
		return nil
	},
}

var reminderSnoozeCmd = &cobra.Command{
	Use:   "snooze ID NEW_DATE",
	Short: "Snooze a reminder to a new due date (MM/DD/YYYY)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("reminder snooze")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Snooze(id, args[1]); err != nil {
			return err
		}

		fmt.Printf("Reminder #%d snoozed until %s\n", id, args[1])
		return nil
	},
}

var reminderReopenCmd = &cobra.Command{
	Use:   "reopen ID",
	Short: "Return a reminder to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("reminder reopen")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Reopen(id); err != nil {
			return err
		}

		fmt.Printf("Reminder #%d reopened\n", id)
		return nil
	},
}

func printSummaries(summaries []*tracker.ReminderSummary) {
	if len(summaries) == 0 {
		fmt.Println("No reminders.")
		return
	}

	for _, s := range summaries {
		overdue := ""
		if s.Overdue {
			overdue = "  OVERDUE"
		}
		fmt.Printf("#%d  %s  %-30s  %s  [%s]%s\n",
			s.Reminder.ID,
			s.Reminder.DueDate,
			s.Reminder.Title,
			s.RelatedName,
			s.Reminder.Status,
			overdue,
		)
	}
}

// template command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage message templates",
}

var templateAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a message template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryArg, _ := cmd.Flags().GetString("category")
		category, err := model.ParseTemplateCategory(categoryArg)
		if err != nil {
			return err
		}
		content, _ := cmd.Flags().GetString("content")

		a, err := newApp("template add")
		if err != nil {
			return err
		}
		defer a.Close()

		tmpl := &model.MessageTemplate{Name: args[0], Category: category, Content: content}

		id, err := a.Service().SaveTemplate(tmpl)
		if err != nil {
			return err
		}

		fmt.Printf("Added template #%d: %s\n", id, tmpl.Name)
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List message templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("template list")
		if err != nil {
			return err
		}
		defer a.Close()

		templates, err := a.Service().FindTemplates("")
		if err != nil {
			return err
		}

		if len(templates) == 0 {
			fmt.Println("No templates.")
			return nil
		}

		for _, tmpl := range templates {
			fmt.Printf("#%d  %-30s  %s\n", tmpl.ID, tmpl.Name, tmpl.Category)
		}
		return nil
	},
}

var templateRenderCmd = &cobra.Command{
	Use:   "render ID [KEY=VALUE...]",
	Short: "Render a template with variable values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		vars := make(map[string]string, len(args)-1)
		for _, arg := range args[1:] {
			key, value, found := strings.Cut(arg, "=")
			if !found || key == "" {
				return fmt.Errorf("invalid variable %q, want KEY=VALUE", arg)
			}
			vars[key] = value
		}

		a, err := newApp("template render")
		if err != nil {
			return err
		}
		defer a.Close()

		rendered, err := a.Service().Render(id, vars)
		if err != nil {
			return err
		}

		fmt.Println(rendered)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// db subcommands
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbBackupCmd)

	// contact subcommands
	contactCmd.AddCommand(contactAddCmd)
	contactAddCmd.Flags().String("company", "", "Company the contact works at")
	contactAddCmd.Flags().String("title", "", "Job title")
	contactAddCmd.Flags().String("email", "", "Email address")
	contactAddCmd.Flags().String("linkedin", "", "LinkedIn profile URL")
	contactAddCmd.Flags().String("status", model.ContactStatuses[0], "Contact status label")
	contactAddCmd.Flags().String("notes", "", "Free-form notes")
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactRemindCmd)
	contactRemindCmd.Flags().String("description", "", "Reminder description")

	// application subcommands
	applicationCmd.AddCommand(applicationAddCmd)
	applicationAddCmd.Flags().String("link", "", "Job posting URL")
	applicationAddCmd.Flags().String("status", model.ApplicationStatuses[0], "Application status label")
	applicationAddCmd.Flags().String("notes", "", "Free-form notes")
	applicationCmd.AddCommand(applicationListCmd)
	applicationCmd.AddCommand(applicationDeleteCmd)

	// doc subcommands
	docCmd.AddCommand(docAddCmd)
	docAddCmd.Flags().String("type", string(model.DocOther), "Document type")
	docAddCmd.Flags().String("version", "", "Version label")
	docAddCmd.Flags().String("file", "", "Path to the file to store")
	docAddCmd.Flags().String("notes", "", "Free-form notes")
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docLinkCmd)
	docCmd.AddCommand(docUnlinkCmd)
	docCmd.AddCommand(docLinksCmd)
	docCmd.AddCommand(docSetLinksCmd)

	// reminder subcommands
	reminderCmd.AddCommand(reminderListCmd)
	reminderListCmd.Flags().String("status", "all", "Status filter: all, pending, completed, snoozed")
	reminderListCmd.Flags().String("due", "all", "Due date filter: all, today, this-week, next-week")
	reminderListCmd.Flags().String("from", "", "Custom range start (MM/DD/YYYY)")
	reminderListCmd.Flags().String("to", "", "Custom range end (MM/DD/YYYY)")
	reminderCmd.AddCommand(reminderUpcomingCmd)
	reminderUpcomingCmd.Flags().IntP("days", "n", 7, "Horizon in days")
	reminderCmd.AddCommand(reminderCompleteCmd)
	reminderCmd.AddCommand(reminderSnoozeCmd)
	reminderCmd.AddCommand(reminderReopenCmd)

	// template subcommands
	templateCmd.AddCommand(templateAddCmd)
	templateAddCmd.Flags().String("category", string(model.CategoryOther), "Template category")
	templateAddCmd.Flags().String("content", "", "Template body with {variable} placeholders")
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateRenderCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(applicationCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(reminderCmd)
	rootCmd.AddCommand(templateCmd)
}
