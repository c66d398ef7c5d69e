package screenshot

import (
	"github.com/xaionaro-go/screenshotctl/pkg/command"
)

type FuncLookupEnv func(key string) (string, bool)

type OptionsAggregated struct {
	Runner    command.Runner
	LookupEnv FuncLookupEnv
}

type Option interface {
	apply(*OptionsAggregated)
}

type Options []Option

func (s Options) apply(opts *OptionsAggregated) {
	for _, opt := range s {
		opt.apply(opts)
	}
}

func (s Options) Aggregate() OptionsAggregated {
	opts := OptionsAggregated{}
	s.apply(&opts)
	return opts
}

// OptionRunner replaces the process invoker (command.ExecRunner by default).
type OptionRunner struct {
	command.Runner
}

func (opt OptionRunner) apply(opts *OptionsAggregated) {
	opts.Runner = opt.Runner
}

// OptionLookupEnv replaces the environment lookup (os.LookupEnv by default).
type OptionLookupEnv FuncLookupEnv

func (opt OptionLookupEnv) apply(opts *OptionsAggregated) {
	opts.LookupEnv = FuncLookupEnv(opt)
}
