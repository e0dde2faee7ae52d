package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/pricetracker/config"
)

// Environment of the extensions, the same variables configure cpt itself.
const (
	EnvDataFile = config.Prefix + "_DATA_FILE"
	EnvCurrency = config.Prefix + "_CURRENCY"
	EnvVerbose  = config.Prefix + "_VERBOSE"
)

// RunExtension attempts to find and execute an external cpt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "cpt-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		debugf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvDataFile+"="+*dataFile,
		EnvCurrency+"="+*currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
