package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/spf13/afero"
)

const lsTimeLayout = "Jan _2 15:04"

// Ls lists the contents of a directory, the current one by default.
func Ls(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "ls [-l] [directory]",
		Short: "List the contents of the current directory.",
	}

	longListing := cmd.Flags().Bool('l', "use a long listing format")

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		directory := "."
		switch len(args) {
		case 0:
		case 1:
			directory = args[0]
		default:
			return cmd.UsageError()
		}

		if err := StatDir(virtOS, "ls", directory); err != nil {
			return err
		}
		entries, err := afero.ReadDir(virtOS, directory)
		if err != nil {
			return err
		}

		w := virtOS.Stdout()
		if !*longListing {
			for _, entry := range entries {
				fmt.Fprintln(w, DirColor(entry).Sprint(entry.Name()))
			}
			return nil
		}

		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		for _, f := range entries {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
				f.Mode().String(),
				f.Size(),
				f.ModTime().Format(lsTimeLayout),
				DirColor(f).Sprint(f.Name()))
		}
		return tw.Flush()
	})
}

// Dir lists the names in a directory, one per line.
func Dir(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "dir [directory]",
		Short: "List the contents of a directory.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		directory := "."
		switch len(args) {
		case 0:
		case 1:
			directory = args[0]
		default:
			return cmd.UsageError()
		}

		if fi, err := virtOS.Stat(directory); err != nil || !fi.IsDir() {
			fmt.Fprintf(virtOS.Stdout(), "%s is not a valid directory\n", directory)
			return nil
		}

		entries, err := afero.ReadDir(virtOS, directory)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Fprintln(virtOS.Stdout(), entry.Name())
		}
		return nil
	})
}

var _ vos.ProcessFunc = Ls
var _ vos.ProcessFunc = Dir

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"ls"},
		Use:   "ls [-l] [directory]",
		Short: "List the contents of the current directory.",
		Proc:  Ls,
	})
	mustAddCommand(CommandEntry{
		Names: []string{"dir"},
		Use:   "dir [directory]",
		Short: "List the contents of a directory.",
		Proc:  Dir,
	})
}
