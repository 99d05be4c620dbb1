package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ztrue/tracerr"

	"github.com/katalvlaran/initwith/internal/lengthgen"
	"github.com/katalvlaran/initwith/internal/log"
)

// Config keys, shared by the yaml file and the flags bound to them.
const (
	keyPackage    = "package"
	keyMaxLen     = "max_len"
	keyOutput     = "output"
	keyTestOutput = "test_output"
)

func newGenCmd(a *app) *cobra.Command {
	gen := &cobra.Command{
		Use:   "gen",
		Short: "Write the Array constraint and its per-length test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(cmd)
		},
	}
	flags := gen.Flags()
	flags.String("package", "", "target package name")
	flags.Int("max", 0, "largest supported array length")
	flags.String("out", "", "generated source path")
	flags.String("test-out", "", "generated test path")
	flags.Bool("no-test", false, "do not generate the per-length test")

	// bound flags override the config file only when set explicitly
	_ = a.v.BindPFlag(keyPackage, flags.Lookup("package"))
	_ = a.v.BindPFlag(keyMaxLen, flags.Lookup("max"))
	_ = a.v.BindPFlag(keyOutput, flags.Lookup("out"))
	_ = a.v.BindPFlag(keyTestOutput, flags.Lookup("test-out"))

	return gen
}

// gen resolves the configuration and writes the outputs.
func (a *app) gen(cmd *cobra.Command) error {
	var cfg lengthgen.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		err = tracerr.Wrap(fmt.Errorf("decode config: %w", err))
		log.NewEntry(err).Error("generation failed")
		return err
	}
	if noTest, _ := cmd.Flags().GetBool("no-test"); noTest {
		cfg.TestOutput = ""
	}
	log.WithFields(log.F{
		"package":  cfg.Package,
		"max_len":  cfg.MaxLen,
		"output":   cfg.Output,
		"test_out": cfg.TestOutput,
	}).Debug("resolved config")

	written, err := lengthgen.Write(cfg)
	if err != nil {
		err = tracerr.Wrap(err)
		log.NewEntry(err).Error("generation failed")
		return err
	}
	for _, path := range written {
		log.WithFields(log.F{"path": path, "max_len": cfg.MaxLen}).Info("generated")
	}

	return nil
}
