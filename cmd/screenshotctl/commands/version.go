package commands

import (
	"encoding/json"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/xaionaro-go/screenshotctl/pkg/buildvars"
)

var Version = &cobra.Command{
	Use:   "version",
	Short: "print the build information",
	Args:  cobra.ExactArgs(0),
	Run:   version,
}

func init() {
	Root.AddCommand(Version)
}

type buildVars struct {
	Version   string `json:",omitempty"`
	GitCommit string `json:",omitempty"`
	BuildDate string `json:",omitempty"`
}

type buildInfo struct {
	BuildInfo *debug.BuildInfo `json:",omitempty"`
	BuildVars *buildVars       `json:",omitempty"`
}

func getBuildInfo() buildInfo {
	result := buildInfo{
		BuildVars: &buildVars{
			Version:   buildvars.Version,
			GitCommit: buildvars.GitCommit,
		},
	}
	if buildvars.BuildDate != nil {
		result.BuildVars.BuildDate = buildvars.BuildDate.UTC().Format("2006-01-02T15:04:05Z")
	}
	if *result.BuildVars == (buildVars{}) {
		result.BuildVars = nil
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		result.BuildInfo = bi
	}
	return result
}

func version(cmd *cobra.Command, args []string) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", " ")
	err := enc.Encode(getBuildInfo())
	assertNoError(cmd.Context(), err)
}
