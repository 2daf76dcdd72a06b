package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/board"
	apperrors "github.com/boardkit/boardkit/pkg/errors"
)

// boardCommand groups the board store operations.
func (c *CLI) boardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage stored boards",
		Long: `Manage stored boards.

Boards live in a pluggable store: the default file store under
~/.config/boardkit/boards/, a Redis instance (--store redis), or a MongoDB
collection (--store mongo).`,
	}

	cmd.AddCommand(c.boardListCommand())
	cmd.AddCommand(c.boardImportCommand())
	cmd.AddCommand(c.boardExportCommand())
	cmd.AddCommand(c.boardDeleteCommand())

	return cmd
}

func (c *CLI) boardListCommand() *cobra.Command {
	var flags storeFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored board IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd, flags)
			if err != nil {
				return err
			}

			ids, err := st.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list boards: %w", err)
			}
			if len(ids) == 0 {
				printInfo("No boards stored")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) boardImportCommand() *cobra.Command {
	var flags storeFlags
	cmd := &cobra.Command{
		Use:   "import [id] [board.json]",
		Short: "Store a board document under an ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, path := args[0], args[1]
			if err := apperrors.ValidateBoardID(id); err != nil {
				return err
			}

			b, err := board.ReadFile(path)
			if err != nil {
				return fmt.Errorf("load board %s: %w", path, err)
			}
			if _, err := board.ToScene(b); err != nil {
				return fmt.Errorf("invalid board document: %w", err)
			}

			st, err := c.openStore(cmd, flags)
			if err != nil {
				return err
			}
			if err := st.Put(cmd.Context(), id, b); err != nil {
				return fmt.Errorf("store board: %w", err)
			}

			printSuccess("Stored board %q", id)
			printStats(len(b.Objects), len(b.Guides), false)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) boardExportCommand() *cobra.Command {
	var (
		flags  storeFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Write a stored board to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd, flags)
			if err != nil {
				return err
			}

			b, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load board %q: %w", args[0], err)
			}

			if output == "" || output == "-" {
				return board.Write(b, os.Stdout)
			}
			if err := board.WriteFile(b, output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported board %q", args[0])
			printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.register(cmd)
	return cmd
}

func (c *CLI) boardDeleteCommand() *cobra.Command {
	var flags storeFlags
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a stored board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd, flags)
			if err != nil {
				return err
			}
			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete board %q: %w", args[0], err)
			}
			printSuccess("Deleted board %q", args[0])
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
