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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"dirpx.dev/coderr/code"
	"dirpx.dev/coderr/mapper"
	"dirpx.dev/coderr/reason"
)

func newCodesCmd() *cobra.Command {
	var (
		band string
		lang string
	)

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List registered error codes",
		Long: `List every registered code with its reason and default transport
statuses. Use --band to restrict the listing to one band.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := reason.ParseLocale(lang)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", lang, err)
			}

			entries := code.Entries()
			if band != "" {
				b, ok := code.ParseBand(band)
				if !ok {
					return fmt.Errorf("unknown band %q", band)
				}
				entries = code.InBand(b)
			}
			return printCodes(cmd.OutOrStdout(), entries, loc)
		},
	}

	cmd.Flags().StringVar(&band, "band", "", "Only list one band (io, messaging, persistence, device, system, authorization, translation)")
	cmd.Flags().StringVar(&lang, "lang", "en", "Reason language (en, zh)")
	return cmd
}

func printCodes(w io.Writer, entries []code.Entry, loc reason.Locale) error {
	m, err := mapper.New()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Code", "Name", "Band", "Reason", "HTTP", "gRPC")
	for _, e := range entries {
		st := m.Status(e.Code)
		if err := table.Append(
			strconv.FormatUint(uint64(e.Code), 10),
			e.Name,
			e.Band().String(),
			e.Reason.In(loc),
			strconv.Itoa(st.HTTP),
			st.GRPC.String(),
		); err != nil {
			return err
		}
	}
	return table.Render()
}
