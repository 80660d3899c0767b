package giapha

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	engine "github.com/giapha-vn/giapha"
	"github.com/giapha-vn/giapha/pkg/config"
	"github.com/giapha-vn/giapha/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <snapshot-file> [target-id]",
	Short: "Resolve kinship addressing from a snapshot file",
	Long: `Resolve how the reference person addresses a target, reading the tree
from a snapshot file (JSON or YAML). Without a target id, addressing is
resolved for every person in the tree.

The reference person defaults to the snapshot's userId and can be
overridden with --reference.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

var resolveReference string

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveReference, "reference", "", "Reference person id (defaults to the snapshot's userId)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg.Log)

	snap, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	client, err := engine.NewClient(snap, &engine.Config{DefaultReferenceID: cfg.Engine.DefaultReference}, logger)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		info, err := client.CalculateAddressing(resolveReference, args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd, info)
	}

	results, err := client.AddressAll(resolveReference)
	if err != nil {
		return err
	}
	return printJSON(cmd, results)
}

// loadSnapshot reads a snapshot envelope from a JSON or YAML file. YAML is
// decoded generically and re-encoded as JSON so both formats share the
// envelope's json field names.
func loadSnapshot(path string) (*types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML snapshot: %w", err)
		}
		data, err = json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML snapshot: %w", err)
		}
	}

	snap := &types.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
