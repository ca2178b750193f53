package projects

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crucial707/folio-api/cmd/cli/client"
	"github.com/crucial707/folio-api/cmd/cli/output"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Projects
// ==========================
func InitProjects(rootCmd *cobra.Command) {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Manage portfolio projects",
	}

	projectsCmd.AddCommand(
		listCmd(),
		getCmd(),
		createCmd(),
		updateCmd(),
		deleteCmd(),
		imageCmd(),
	)

	rootCmd.AddCommand(projectsCmd)
}

type projectResponse struct {
	Message string         `json:"message"`
	Project models.Project `json:"project"`
}

var headers = []string{"ID", "Name", "Languages", "Favorite", "Image"}

func row(p models.Project) []interface{} {
	image := "-"
	if p.Image != nil {
		image = *p.Image
	}
	fav := ""
	if p.Favorite {
		fav = "*"
	}
	return []interface{}{p.ID, p.Name, strings.Join(p.Languages, ", "), fav, image}
}

func render(cmd *cobra.Command, asJSON bool, p models.Project) error {
	if asJSON {
		return output.RenderJSON(cmd.OutOrStdout(), p)
	}
	output.RenderTable(cmd.OutOrStdout(), headers, [][]interface{}{row(p)})
	return nil
}

// ==========================
// LIST
// ==========================
func listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp struct {
				Projects []models.Project `json:"projects"`
			}
			if err := client.New().JSON(cmd.Context(), "GET", "/projects", nil, &resp); err != nil {
				return err
			}
			if asJSON {
				return output.RenderJSON(cmd.OutOrStdout(), resp.Projects)
			}
			rows := make([][]interface{}, 0, len(resp.Projects))
			for _, p := range resp.Projects {
				rows = append(rows, row(p))
			}
			output.RenderTable(cmd.OutOrStdout(), headers, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// ==========================
// GET
// ==========================
func getCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			var resp projectResponse
			if err := c.JSON(cmd.Context(), "GET", "/projects/"+args[0], nil, &resp); err != nil {
				return err
			}
			return render(cmd, asJSON, resp.Project)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// ==========================
// CREATE
// ==========================
func createCmd() *cobra.Command {
	var in models.NewProject
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Name == "" {
				return fmt.Errorf("--name is required")
			}
			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			var resp projectResponse
			if err := c.JSON(cmd.Context(), "POST", "/projects", in, &resp); err != nil {
				return err
			}
			return render(cmd, asJSON, resp.Project)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&in.URL, "url", "", "Live URL")
	cmd.Flags().StringVar(&in.Description, "description", "", "Short description")
	cmd.Flags().StringSliceVar(&in.Languages, "languages", nil, "Comma-separated languages")
	cmd.Flags().StringVar(&in.Github, "github", "", "Repository URL")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// ==========================
// UPDATE
// ==========================

// updateCmd only sends the flags that were given on the command line.
func updateCmd() *cobra.Command {
	var name, url, description, github string
	var languages []string
	var favorite, asJSON bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.ProjectPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("url") {
				patch.URL = &url
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("languages") {
				patch.Languages = &languages
			}
			if flags.Changed("github") {
				patch.Github = &github
			}
			if flags.Changed("favorite") {
				patch.Favorite = &favorite
			}
			if len(patch.Fields()) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			var resp projectResponse
			if err := c.JSON(cmd.Context(), "PUT", "/projects/"+args[0], patch.Fields(), &resp); err != nil {
				return err
			}
			return render(cmd, asJSON, resp.Project)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&url, "url", "", "Live URL")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringSliceVar(&languages, "languages", nil, "Comma-separated languages")
	cmd.Flags().StringVar(&github, "github", "", "Repository URL")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark or unmark as favorite")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			if err := c.JSON(cmd.Context(), "DELETE", "/projects/"+args[0], nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Project deleted")
			return nil
		},
	}
}

// ==========================
// IMAGE
// ==========================
func imageCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "image <id> <file>",
		Short: "Upload a project image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			var resp projectResponse
			if err := c.Upload(cmd.Context(), "/projects/"+args[0]+"/image", filepath.Base(args[1]), f, &resp); err != nil {
				return err
			}
			return render(cmd, asJSON, resp.Project)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
