package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srwlli/docaudit/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Show the resolved schema for a document type",
	Long: `Print the fully resolved schema for a document type.

Resolution applies inheritance: required fields and properties declared by
base schemas appear merged into the output. Use --list to enumerate the
loaded schema identifiers.`,
	Example: `  docaudit schema foundation
  docaudit schema component
  docaudit schema --list`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: GroupInspection,
	RunE:    runSchema,
}

func init() {
	schemaCmd.Flags().Bool("list", false, "list loaded schema identifiers")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	listFlag, _ := cmd.Flags().GetBool("list")

	eng, _, err := buildEngine(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	reg := eng.Registry()

	if listFlag {
		for _, id := range reg.IDs() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	}

	if len(args) != 1 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: provide a document type or --list")
		return NewExitError(ExitInvalidArguments)
	}

	resolved, err := reg.Load(args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	printSchema(resolved, cmd.OutOrStdout())
	return nil
}

// printSchema prints a resolved schema in a readable layout.
func printSchema(s *schema.Schema, out io.Writer) {
	fmt.Fprintf(out, "Schema %s\n", s.ID)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))

	if len(s.Required) > 0 {
		fmt.Fprintf(out, "Required fields: %s\n\n", strings.Join(s.Required, ", "))
	}

	fmt.Fprintf(out, "Properties:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		printSchemaProperty(name, s.Properties[name], out)
	}

	if len(s.Sections) > 0 {
		fmt.Fprintf(out, "\nSections:\n")
		fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))
		for _, sec := range s.Sections {
			switch {
			case len(sec.AnyOf) > 0:
				fmt.Fprintf(out, "any of: %s\n", strings.Join(sec.AnyOf, " | "))
			case sec.Pattern != "":
				fmt.Fprintf(out, "%s (pattern %s)\n", sec.Title, sec.Pattern)
			default:
				fmt.Fprintln(out, sec.Title)
			}
		}
	}
}

func printSchemaProperty(name string, prop schema.Property, out io.Writer) {
	typeStr := prop.Type
	if len(prop.Enum) > 0 {
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(prop.Enum, ", "))
	}

	fmt.Fprintf(out, "%s: %s\n", name, typeStr)
	if prop.Pattern != "" {
		fmt.Fprintf(out, "  # pattern: %s\n", prop.Pattern)
	}
	if prop.Description != "" {
		fmt.Fprintf(out, "  # %s\n", prop.Description)
	}
}
