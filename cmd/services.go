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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/randomly/internal/translator"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List translation services",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tDEFAULT\tLANGUAGES")
		for _, name := range translator.Names {
			svc, err := translator.New(name, cfg.Translator.ServiceConfig())
			if err != nil {
				return err
			}
			langs, err := svc.SupportedLanguages(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list languages for %s: %w", name, err)
			}
			supported := strings.Join(langs, ",")
			if len(langs) == 0 {
				supported = "any"
			}
			isDefault := ""
			if name == cfg.Translator.Service {
				isDefault = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, isDefault, supported)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
