package cli

import (
	"os"

	"github.com/blog-api/internal/notebook"
	"github.com/blog-api/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDBPath = "./notebook.db"

// app carries the state shared by every command of one invocation
type app struct {
	dbPath  string
	storage *notebook.SQLiteStorage
	store   *notebook.Store
}

// NewRootCmd builds the notebook command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "notebook [command] [flags]",
		Short: "Notebook: write, edit and browse blog posts stored on this machine",
		Long: `Notebook keeps blog posts in a local database.

  list      all posts, newest first
  show      one post
  create    write a new post
  edit      change an existing post
  delete    remove a post`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	dbPath := os.Getenv("NOTEBOOK_DB")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", dbPath, "path to the notebook database (env NOTEBOOK_DB)")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.createCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.clearCmd(),
		a.seedCmd(),
	)

	return root
}

// Execute runs the notebook CLI
func Execute() {
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		OutputErrorAndExit("%v", err)
	}
}

func (a *app) open(cmd *cobra.Command, args []string) error {
	storage, err := notebook.OpenSQLite(a.dbPath)
	if err != nil {
		return err
	}

	log := logger.NewWithOptions(cmd.ErrOrStderr(), "notebook", "warn", "pretty")
	a.storage = storage
	a.store = notebook.NewStore(storage, log)
	return nil
}

func (a *app) close(cmd *cobra.Command, args []string) error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}
