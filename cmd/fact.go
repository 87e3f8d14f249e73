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

	"github.com/spf13/cobra"

	"github.com/valpere/randomly/internal/fact"
	"github.com/valpere/randomly/internal/render"
)

var (
	factFormat      string
	factLanguage    string
	factTranslateTo string
	factService     string
	factPlain       bool
)

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Fetch a random useless fact",
	Long: `Fetch a random useless fact in the given format and language.

Formats:   html, json, txt, md
Languages: en, de

The fact is printed as canonical JSON. With --translate-to the fact's text
is also translated (requires --format json).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if factTranslateTo != "" && factFormat != string(fact.FormatJSON) {
			return fmt.Errorf("--translate-to requires --format json")
		}

		out, err := buildFetcher().Fetch(ctx, factFormat, factLanguage)
		if err != nil {
			return err
		}

		var translated string
		if factTranslateTo != "" {
			payload, err := fact.ParsePayload(out)
			if err != nil {
				return err
			}
			tr, err := buildTranslator(ctx, factService)
			if err != nil {
				return err
			}
			translated, err = tr.Translate(ctx, *payload, factTranslateTo)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
		}

		w := cmd.OutOrStdout()
		if !factPlain {
			fmt.Fprintln(w, out)
			if translated != "" {
				fmt.Fprintln(w, translated)
			}
			return nil
		}

		r, err := render.New()
		if err != nil {
			return err
		}
		text, err := r.Fact(fact.Format(factFormat), fact.Language(factLanguage), out)
		if err != nil {
			return err
		}
		fmt.Fprint(w, text)
		if translated != "" {
			text, err := r.Translation(fact.Language(factLanguage), factTranslateTo, translated)
			if err != nil {
				return err
			}
			fmt.Fprint(w, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factCmd)

	factCmd.Flags().StringVarP(&factFormat, "format", "f", "json", "Output format: html, json, txt, md")
	factCmd.Flags().StringVarP(&factLanguage, "language", "l", "en", "Fact language: en, de")
	factCmd.Flags().StringVarP(&factTranslateTo, "translate-to", "t", "", "Translate the fact into this language")
	factCmd.Flags().StringVar(&factService, "service", "", "Translation service (default from config)")
	factCmd.Flags().BoolVar(&factPlain, "plain", false, "Print human-readable text instead of JSON")
}
