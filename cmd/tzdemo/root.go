package main

import (
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/Maps/ChainTable"
	"github.com/g-m-twostay/go-containers/internal/diag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagLength   = "length"
	flagHash     = "hash"
	flagLogLevel = "log-level"
)

// settings of one invocation, read from flags or TZ_* environment variables.
type settings struct {
	length uint
	hash   Maps.HashFunc
}

var hashes = map[string]Maps.HashFunc{
	"weinberger": Go_Containers.Weinberger,
	"xxhash":     Go_Containers.XXHash,
	"runtime":    Go_Containers.NewHasher().HashString,
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "tzdemo",
		Short:         "Exercise the go-containers lists, queues and chained tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(v.GetString(flagLogLevel))
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			diag.Log.SetLevel(lvl)
			diag.Log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	fs := root.PersistentFlags()
	fs.Uint(flagLength, ChainTable.DefaultLength, "number of table slots")
	fs.String(flagHash, "weinberger", "table hash function: weinberger, xxhash or runtime")
	fs.String(flagLogLevel, "info", "log level")
	for _, f := range []string{flagLength, flagHash, flagLogLevel} {
		_ = v.BindPFlag(f, fs.Lookup(f))
	}

	load := func() (settings, error) {
		h, ok := hashes[v.GetString(flagHash)]
		if !ok {
			return settings{}, errors.Errorf("unknown hash function %q", v.GetString(flagHash))
		}
		return settings{length: v.GetUint(flagLength), hash: h}, nil
	}
	root.AddCommand(newDemoCmd(load), newLoadCmd(load))
	return root
}
