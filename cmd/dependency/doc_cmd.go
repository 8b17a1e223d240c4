/*
 *     Copyright 2024 The Housing Estimator Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// newDocCommand returns the command generating markdown documents of name.
func newDocCommand(name string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:               "doc",
		Short:             fmt.Sprintf("generate documents of %s", name),
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			return doc.GenMarkdownTree(cmd.Root(), dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "path", "p", filepath.Join(".", "docs", name), "destination dir of generated markdown documents")
	return cmd
}
