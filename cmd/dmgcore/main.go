package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmgcore/dmgcore/internal/bus"
	"github.com/dmgcore/dmgcore/internal/cartridge"
	"github.com/dmgcore/dmgcore/internal/cpu"
	"github.com/dmgcore/dmgcore/internal/state"
	"github.com/dmgcore/dmgcore/pkg/log"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dmgcore",
		Short: "A Sharp LR35902 (Game Boy DMG) instruction set core",
	}

	var steps int
	var saveStatePath string
	var verbose bool

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Load a ROM-only cartridge and run the CPU core for a fixed number of steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Null()
			if verbose {
				logger = log.New()
			}

			c, b, err := load(args[0], logger)
			if err != nil {
				return err
			}

			var totalCycles uint64
			for i := 0; i < steps; i++ {
				totalCycles += uint64(c.Step(nil))
			}
			fmt.Printf("ran %d steps (%d T-states), PC=0x%04X SP=0x%04X\n", steps, totalCycles, c.PC, c.SP)

			if saveStatePath != "" {
				s := state.New()
				c.Save(s)
				b.Save(s)
				if err := s.SaveToFile(saveStatePath); err != nil {
					return fmt.Errorf("dmgcore: writing save state: %w", err)
				}
				fmt.Printf("wrote save state to %s\n", saveStatePath)
			}
			return nil
		},
	}
	runCmd.Flags().IntVar(&steps, "steps", 1000, "Number of CPU steps to run")
	runCmd.Flags().StringVar(&saveStatePath, "save-state", "", "Write a save state to this path after running")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log bus diagnostics")

	infoCmd := &cobra.Command{
		Use:   "info [rom]",
		Short: "Print a cartridge's header information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("dmgcore: reading rom: %w", err)
			}
			cart, err := cartridge.Load(raw)
			if err != nil {
				return err
			}
			fmt.Printf("title:    %s\n", cart.Title())
			fmt.Printf("checksum: %016x\n", cart.Checksum())
			fmt.Printf("size:     %d bytes\n", len(raw))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, infoCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func load(path string, logger log.Logger) (*cpu.CPU, *bus.Bus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dmgcore: reading rom: %w", err)
	}
	cart, err := cartridge.Load(raw)
	if err != nil {
		return nil, nil, err
	}
	b := bus.New(cart, logger)
	return cpu.NewCPU(b), b, nil
}
