package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

func newWordsCmd(root *rootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Describe the word list used for passphrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, words, err := newGeneratorService(root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if list {
				for _, word := range words.Words() {
					fmt.Fprintln(w, word)
				}
				return nil
			}
			fmt.Fprintf(w, "words: %d\n", words.Len())
			fmt.Fprintf(w, "bits per word: %.2f\n", math.Log2(float64(words.Len())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every word")

	return cmd
}
