package main

import (
	"github.com/spf13/cobra"

	"github.com/ndthuan92/colvec/internal"
	"github.com/ndthuan92/colvec/server/colvecwire"
)

func newServeCommand() *cobra.Command {
	var (
		addr    string
		cfgPath string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the TCP eval server",
		Long: `Start the colvec TCP server. Clients send length-prefixed JSON
frames with one expression per request and get the evaluated batch back.

Example:
  colvec serve --addr :4141
  colvec serve --config ./colvec.yaml --debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := colvecwire.ServerConfig{Addr: addr, BatchRows: 1, Debug: debug}
			if cfgPath != "" {
				cfg, err := internal.LoadConfig(cfgPath)
				if err != nil {
					return err
				}
				sc.Addr = cfg.Server.Addr
				sc.BatchRows = cfg.Eval.BatchRows
				sc.Debug = sc.Debug || cfg.Server.Debug
			}
			return colvecwire.Run(sc)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":4141", "listen address")
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to yaml config (overrides --addr)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log per-session activity")

	return cmd
}
