package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/texdoc"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func (a *app) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [text]",
		Short: "Print text with **bold**, _italic_ and #color{...} markers converted",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				in := cmd.InOrStdin()
				if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
					return errors.New("no text given: pass it as arguments or pipe it on stdin")
				}
				data, err := io.ReadAll(in)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}
			_, err := fmt.Fprintln(a.out, texdoc.Format(text))
			return err
		},
	}
}
