package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Normalize the arguments, or each line of stdin when none are given",
		RunE:  executeNormalize,
	}
}

func executeNormalize(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Close()

	p, err := a.pipeline()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		normalized, err := p.Normalize(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, normalized)
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		normalized, err := p.Normalize(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(out, normalized)
	}
	return scanner.Err()
}
