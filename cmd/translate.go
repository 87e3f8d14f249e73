/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/randomly/internal/fact"
	"github.com/valpere/randomly/internal/render"
)

var (
	inputFile        string
	targetLang       string
	translateService string
	translatePlain   bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a fetched fact",
	Long: `Translate a fact previously fetched with "randomly fact --format json".

The payload is read from --input, or from stdin when no file is given, and
must carry a "language" field; when it does not, the source language is
detected from the text.

Available services:
  - mymemory    MyMemory (free, 5000 chars/day)
  - google      Google Translate (requires credentials)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var raw []byte
		var err error
		if inputFile == "" || inputFile == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(inputFile)
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		normalized, err := fact.Normalize(string(raw))
		if err != nil {
			return err
		}
		payload, err := fact.ParsePayload(normalized)
		if err != nil {
			return err
		}

		tr, err := buildTranslator(ctx, translateService)
		if err != nil {
			return err
		}

		out, err := tr.Translate(ctx, *payload, targetLang)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		w := cmd.OutOrStdout()
		if !translatePlain {
			fmt.Fprintln(w, out)
			return nil
		}

		r, err := render.New()
		if err != nil {
			return err
		}
		text, err := r.Translation(fact.Language(payload.Language), targetLang, out)
		if err != nil {
			return err
		}
		fmt.Fprint(w, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File with a json fact payload (default stdin)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().StringVar(&translateService, "service", "", "Translation service (default from config)")
	translateCmd.Flags().BoolVar(&translatePlain, "plain", false, "Print human-readable text instead of JSON")

	translateCmd.MarkFlagRequired("target")
}
