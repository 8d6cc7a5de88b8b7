/*
   Copyright 2025 The DIRPX Authors

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

package main

import (
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/mapper"
)

func newLookupCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "lookup <code>",
		Short: "Describe one error code",
		Long: `Print the registry entry of a code, given as a number (3003) or a
name (DataBaseNotFound), together with its resolved transport statuses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			m, err := mapper.New()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if explain {
				_, err = fmt.Fprintln(out, m.Explain(c))
				return err
			}
			if !c.Registered() {
				return fmt.Errorf("code %s is not registered", strconv.FormatUint(uint64(c), 10))
			}

			desc := adapter.ToDescriptor(coderr.From(coderr.New(c)), m.Status(c))
			b, err := gojson.MarshalIndent(desc, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(b))
			return err
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show how the transport statuses were resolved")
	return cmd
}
