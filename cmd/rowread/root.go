package main

import (
	"context"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/litetable/litetable-rowstream/internal/client"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"github.com/litetable/litetable-rowstream/internal/logging"
	v1 "github.com/litetable/litetable-rowstream/internal/rowstream/v1"
	"github.com/spf13/cobra"
	"io"
	"time"
)

type options struct {
	addr    string
	timeout time.Duration
	keys    []string
	prefix  string
	limit   int64
	verbose bool
}

// rowOutput is a Row with its bytes rendered as text.
type rowOutput struct {
	Key   string       `json:"key"`
	Cells []cellOutput `json:"cells"`
}

type cellOutput struct {
	Family          string `json:"family"`
	Qualifier       string `json:"qualifier"`
	Value           string `json:"value"`
	TimestampMicros int64  `json:"timestampMicros"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rowread",
		Short: "Read rows from a RowStream server",
		Long: `Read rows from a LiteTable RowStream server and print them as JSON.

Rows are selected by explicit keys (--key, repeatable) or by a key prefix (--prefix).
With neither, every row is read. --limit caps the number of rows the server sends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:9443", "RowStream server address")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Deadline for the whole read (0 disables it)")
	cmd.Flags().StringArrayVar(&opts.keys, "key", nil, "Row key to read (repeatable)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Read rows whose key starts with this prefix")
	cmd.Flags().Int64Var(&opts.limit, "limit", 0, "Maximum number of rows to read (0 means no limit)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("key", "prefix")

	return cmd
}

func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	logger, err := logging.New(logging.Config{
		Debug:   opts.verbose,
		Console: true,
		Output:  stderr,
	})
	if err != nil {
		return err
	}

	c, err := client.New(&client.Config{
		Address:     opts.addr,
		ReadTimeout: opts.timeout,
		Logger:      &logger,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	req := &v1.ReadRowsRequest{RowsLimit: opts.limit}
	for _, k := range opts.keys {
		req.RowKeys = append(req.RowKeys, []byte(k))
	}
	if opts.prefix != "" {
		req.RowPrefix = []byte(opts.prefix)
	}

	rows, err := c.ReadRows(ctx, req)
	if err != nil {
		return err
	}

	return writeRows(stdout, rows)
}

func writeRows(w io.Writer, rows []litetable.Row) error {
	out := make([]rowOutput, 0, len(rows))
	for _, row := range rows {
		r := rowOutput{Key: row.Key.String(), Cells: make([]cellOutput, 0, len(row.Cells))}
		for _, c := range row.Cells {
			r.Cells = append(r.Cells, cellOutput{
				Family:          c.FamilyName,
				Qualifier:       string(c.Qualifier),
				Value:           string(c.Value),
				TimestampMicros: c.TimestampMicros,
			})
		}
		out = append(out, r)
	}

	if err := json.MarshalWrite(w, out, jsontext.WithIndent("  "), jsontext.AllowInvalidUTF8(true)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
