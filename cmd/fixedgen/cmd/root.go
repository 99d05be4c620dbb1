package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ztrue/tracerr"

	"github.com/katalvlaran/initwith/internal/lengthgen"
	"github.com/katalvlaran/initwith/internal/log"
)

// app holds the state shared by the command tree.
type app struct {
	v       *viper.Viper
	conf    string
	verbose bool
	json    bool
	stack   bool
}

// NewRootCmd builds the fixedgen command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	root := &cobra.Command{
		Use:          "fixedgen",
		Short:        "Generate fixed-size array constraints for package fixed",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetVerbose(a.verbose)
			if a.json {
				log.SetJSONFormat()
			}
			if a.stack {
				log.ShowStack()
			}
			if a.conf == "" {
				return nil
			}
			a.v.SetConfigFile(a.conf)
			if err := a.v.ReadInConfig(); err != nil {
				err = tracerr.Wrap(err)
				log.NewEntry(err).Error("read config")
				return err
			}
			log.WithFields(log.F{"config": a.conf}).Debug("config loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.conf, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "show verbose")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "log as JSON")
	root.PersistentFlags().BoolVar(&a.stack, "stack", false, "attach call stacks to log entries")

	root.AddCommand(newGenCmd(a), newVersionCmd())

	return root
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setDefaults seeds v with lengthgen's defaults.
func setDefaults(v *viper.Viper) {
	def := lengthgen.DefaultConfig()
	v.SetDefault(keyPackage, def.Package)
	v.SetDefault(keyMaxLen, def.MaxLen)
	v.SetDefault(keyOutput, def.Output)
	v.SetDefault(keyTestOutput, def.TestOutput)
}
